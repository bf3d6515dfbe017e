package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// GradeController handles grade entry and correction endpoints. The acting
// teacher is always taken from the verified token.
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController instance
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// Enter godoc
// @Summary Enter a grade
// @Description Records a grade for a student under one of the caller's assignments
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade data"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /grades [post]
func (ctrl *GradeController) Enter(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Student, assignment and value are required"))
		return
	}

	grade, err := ctrl.gradeService.EnterGrade(c.Request.Context(),
		teacherID, req.StudentID, req.AssignmentID, req.Value, req.Comments)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewGradeResponse(grade), "Grade entered"))
}

// Update godoc
// @Summary Update a grade
// @Description Replaces the value and comments of a grade the caller assigned
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "Grade data"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [put]
func (ctrl *GradeController) Update(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Grade value is required"))
		return
	}

	grade, err := ctrl.gradeService.UpdateGrade(c.Request.Context(), teacherID, id, req.Value, req.Comments)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradeResponse(grade), "Grade updated"))
}

// Delete godoc
// @Summary Delete a grade
// @Description Removes a grade the caller assigned and returns the removed record
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /grades/{id} [delete]
func (ctrl *GradeController) Delete(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	grade, err := ctrl.gradeService.DeleteGrade(c.Request.Context(), teacherID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradeResponse(grade), "Grade deleted"))
}
