package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns an access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Username and password are required"))
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(toAuthResponse(result), "Login successful"))
}

// Refresh godoc
// @Summary Refresh a token pair
// @Description Redeems a refresh token for a new access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Refresh token is required"))
		return
	}

	result, err := ctrl.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(toAuthResponse(result), "Token refreshed"))
}

// Me godoc
// @Summary Get the authenticated profile
// @Description Returns the identity of the calling user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	user, displayName, err := ctrl.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ProfileResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        string(user.Role),
		DisplayName: displayName,
	}, ""))
}

func toAuthResponse(result *services.LoginResult) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
		Username:     result.User.Username,
		Role:         string(result.User.Role),
		UserID:       result.User.ID,
		DisplayName:  result.DisplayName,
	}
}
