package dto

// LoginRequest defines the credentials payload for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RefreshTokenRequest defines the refresh token redemption payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse carries the issued token pair plus identity metadata
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64  `json:"expiresIn" example:"3600"`
	Username     string `json:"username" example:"admin"`
	Role         string `json:"role" example:"ADMINISTRATOR"`
	UserID       int64  `json:"userId" example:"1"`
	DisplayName  string `json:"displayName" example:"System Administrator"`
}

// ProfileResponse describes the authenticated caller
type ProfileResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}
