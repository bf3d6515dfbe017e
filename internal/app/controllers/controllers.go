// Package controllers exposes the HTTP endpoints of the academic records API.
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// Controllers holds every controller instance used by the router
type Controllers struct {
	AuthController       *AuthController
	StudentController    *StudentController
	TeacherController    *TeacherController
	GroupController      *GroupController
	SubjectController    *SubjectController
	AssignmentController *AssignmentController
	GradeController      *GradeController
	StatisticsController *StatisticsController
}

// NewControllers wires all controllers over the service set
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		StudentController:    NewStudentController(svcs.StudentService, svcs.GradeService),
		TeacherController:    NewTeacherController(svcs.TeacherService, svcs.AssignmentService, svcs.GradeService),
		GroupController:      NewGroupController(svcs.GroupService),
		SubjectController:    NewSubjectController(svcs.SubjectService),
		AssignmentController: NewAssignmentController(svcs.AssignmentService, svcs.GradeService),
		GradeController:      NewGradeController(svcs.GradeService),
		StatisticsController: NewStatisticsController(svcs.StatisticsService),
	}
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}
