package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// StudentController handles student management and student self-service endpoints
type StudentController struct {
	studentService *services.StudentService
	gradeService   *services.GradeService
}

// NewStudentController creates a new StudentController instance
func NewStudentController(studentService *services.StudentService, gradeService *services.GradeService) *StudentController {
	return &StudentController{studentService: studentService, gradeService: gradeService}
}

// Create godoc
// @Summary Register a student
// @Description Creates a student profile together with its login account
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /students [post]
func (ctrl *StudentController) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("First name, last name and a valid email are required"))
		return
	}

	student, err := ctrl.studentService.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.GroupID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStudentResponse(student), "Student registered"))
}

// GetByID godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (ctrl *StudentController) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student), ""))
}

// GetAll godoc
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (ctrl *StudentController) GetAll(c *gin.Context) {
	students, err := ctrl.studentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponses(students), ""))
}

// Update godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student data"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (ctrl *StudentController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("First name, last name and a valid email are required"))
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.Email, req.GroupID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student), "Student updated"))
}

// Delete godoc
// @Summary Delete a student
// @Description Removes the student profile, its account and its grades
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (ctrl *StudentController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted"))
}

// MyGrades godoc
// @Summary List the caller's grades
// @Description Returns the grades of the authenticated student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /student/grades [get]
func (ctrl *StudentController) MyGrades(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	student, err := ctrl.studentService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	grades, err := ctrl.gradeService.GetStudentGrades(c.Request.Context(), student.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradeResponses(grades), ""))
}
