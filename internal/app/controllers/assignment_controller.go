package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// AssignmentController handles subject assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
	gradeService      *services.GradeService
}

// NewAssignmentController creates a new AssignmentController instance
func NewAssignmentController(assignmentService *services.AssignmentService, gradeService *services.GradeService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, gradeService: gradeService}
}

// Create godoc
// @Summary Create a subject assignment
// @Description Binds a subject to a teacher and a study group for one academic year and semester
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} dto.APIResponse{data=models.SubjectAssignment}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assignments [post]
func (ctrl *AssignmentController) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Subject, teacher, group, academic year and semester are required"))
		return
	}

	assignment, err := ctrl.assignmentService.Create(c.Request.Context(),
		req.SubjectID, req.TeacherID, req.GroupID, req.AcademicYear, req.Semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(assignment, "Subject assignment created"))
}

// GetByID godoc
// @Summary Get a subject assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.SubjectAssignment}
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [get]
func (ctrl *AssignmentController) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	assignment, err := ctrl.assignmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignment, ""))
}

// GetAll godoc
// @Summary List subject assignments
// @Description Lists assignments, optionally filtered by academic year
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param academicYear query string false "Academic year filter, e.g. 2024/2025"
// @Success 200 {object} dto.APIResponse{data=[]models.SubjectAssignment}
// @Router /assignments [get]
func (ctrl *AssignmentController) GetAll(c *gin.Context) {
	var (
		assignments []*models.SubjectAssignment
		err         error
	)
	if academicYear := c.Query("academicYear"); academicYear != "" {
		assignments, err = ctrl.assignmentService.GetByAcademicYear(c.Request.Context(), academicYear)
	} else {
		assignments, err = ctrl.assignmentService.GetAll(c.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignments, ""))
}

// Update godoc
// @Summary Update a subject assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Assignment data"
// @Success 200 {object} dto.APIResponse{data=models.SubjectAssignment}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assignments/{id} [put]
func (ctrl *AssignmentController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Subject, teacher, group, academic year and semester are required"))
		return
	}

	assignment, err := ctrl.assignmentService.Update(c.Request.Context(), id,
		req.SubjectID, req.TeacherID, req.GroupID, req.AcademicYear, req.Semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignment, "Subject assignment updated"))
}

// Delete godoc
// @Summary Delete a subject assignment
// @Description Removes the assignment together with its grades
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [delete]
func (ctrl *AssignmentController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.assignmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Subject assignment deleted"))
}

// GetGrades godoc
// @Summary List the grades of an assignment
// @Description Returns the grades of one assignment; teachers only see assignments they teach
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id}/grades [get]
func (ctrl *AssignmentController) GetGrades(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	grades, err := ctrl.gradeService.GetAssignmentGrades(c.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradeResponses(grades), ""))
}
