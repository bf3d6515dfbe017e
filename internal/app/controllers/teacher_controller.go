package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// TeacherController handles teacher management and teacher self-service endpoints
type TeacherController struct {
	teacherService    *services.TeacherService
	assignmentService *services.AssignmentService
	gradeService      *services.GradeService
}

// NewTeacherController creates a new TeacherController instance
func NewTeacherController(
	teacherService *services.TeacherService,
	assignmentService *services.AssignmentService,
	gradeService *services.GradeService,
) *TeacherController {
	return &TeacherController{
		teacherService:    teacherService,
		assignmentService: assignmentService,
		gradeService:      gradeService,
	}
}

// Create godoc
// @Summary Register a teacher
// @Description Creates a teacher profile together with its login account
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher data"
// @Success 201 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /teachers [post]
func (ctrl *TeacherController) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("First name, last name and a valid email are required"))
		return
	}

	teacher, err := ctrl.teacherService.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(teacher, "Teacher registered"))
}

// GetByID godoc
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [get]
func (ctrl *TeacherController) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	teacher, err := ctrl.teacherService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teacher, ""))
}

// GetAll godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (ctrl *TeacherController) GetAll(c *gin.Context) {
	teachers, err := ctrl.teacherService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teachers, ""))
}

// Update godoc
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Teacher data"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [put]
func (ctrl *TeacherController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("First name, last name and a valid email are required"))
		return
	}

	teacher, err := ctrl.teacherService.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.Email)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teacher, "Teacher updated"))
}

// Delete godoc
// @Summary Delete a teacher
// @Description Removes the teacher profile, its account, its assignments and their grades
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [delete]
func (ctrl *TeacherController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.teacherService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Teacher deleted"))
}

// MyAssignments godoc
// @Summary List the caller's assignments
// @Description Returns the assignments taught by the authenticated teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SubjectAssignment}
// @Failure 401 {object} dto.ErrorResponse
// @Router /teacher/assignments [get]
func (ctrl *TeacherController) MyAssignments(c *gin.Context) {
	teacher, err := ctrl.callingTeacher(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	assignments, err := ctrl.assignmentService.GetByTeacher(c.Request.Context(), teacher.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignments, ""))
}

// MyGrades godoc
// @Summary List the caller's recorded grades
// @Description Returns every grade recorded under the authenticated teacher's assignments, optionally filtered by subject
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param subjectId query int false "Restrict to one subject"
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /teacher/grades [get]
func (ctrl *TeacherController) MyGrades(c *gin.Context) {
	teacher, err := ctrl.callingTeacher(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var grades []*models.Grade
	if raw := c.Query("subjectId"); raw != "" {
		subjectID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || subjectID <= 0 {
			middleware.HandleAPIError(c, apperrors.NewValidationError("Invalid subjectId parameter"))
			return
		}
		grades, err = ctrl.gradeService.GetTeacherGradesBySubject(c.Request.Context(), teacher.ID, subjectID)
	} else {
		grades, err = ctrl.gradeService.GetTeacherGrades(c.Request.Context(), teacher.ID)
	}
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradeResponses(grades), ""))
}

// callingTeacher resolves the authenticated teacher's profile
func (ctrl *TeacherController) callingTeacher(c *gin.Context) (*models.Teacher, error) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	return ctrl.teacherService.GetByUsername(c.Request.Context(), username)
}
