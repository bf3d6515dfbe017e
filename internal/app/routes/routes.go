// Package routes wires the HTTP endpoints to their controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/controllers"
	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/auth"
)

// SetupRoutes registers every endpoint on the engine
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public authentication endpoints
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", ctrl.AuthController.Login)
		authGroup.POST("/refresh", ctrl.AuthController.Refresh)
		authGroup.GET("/me", middleware.JWTAuth(jwtService), ctrl.AuthController.Me)
	}

	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))

	adminOnly := middleware.RoleRequired(models.RoleAdministrator)
	teacherOnly := middleware.RoleRequired(models.RoleTeacher)
	studentOnly := middleware.RoleRequired(models.RoleStudent)
	anyStaff := middleware.RoleRequired(models.RoleAdministrator, models.RoleTeacher)

	// Administrator: people and catalog management
	students := authenticated.Group("/students")
	{
		students.POST("", adminOnly, ctrl.StudentController.Create)
		students.GET("", anyStaff, ctrl.StudentController.GetAll)
		students.GET("/:id", anyStaff, ctrl.StudentController.GetByID)
		students.PUT("/:id", adminOnly, ctrl.StudentController.Update)
		students.DELETE("/:id", adminOnly, ctrl.StudentController.Delete)
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.POST("", adminOnly, ctrl.TeacherController.Create)
		teachers.GET("", anyStaff, ctrl.TeacherController.GetAll)
		teachers.GET("/:id", anyStaff, ctrl.TeacherController.GetByID)
		teachers.PUT("/:id", adminOnly, ctrl.TeacherController.Update)
		teachers.DELETE("/:id", adminOnly, ctrl.TeacherController.Delete)
	}

	groups := authenticated.Group("/groups")
	{
		groups.POST("", adminOnly, ctrl.GroupController.Create)
		groups.GET("", anyStaff, ctrl.GroupController.GetAll)
		groups.GET("/:id", anyStaff, ctrl.GroupController.GetByID)
		groups.GET("/:id/students", anyStaff, ctrl.GroupController.GetMembers)
		groups.PUT("/:id", adminOnly, ctrl.GroupController.Update)
		groups.DELETE("/:id", adminOnly, ctrl.GroupController.Delete)
	}

	subjects := authenticated.Group("/subjects")
	{
		subjects.POST("", adminOnly, ctrl.SubjectController.Create)
		subjects.GET("", anyStaff, ctrl.SubjectController.GetAll)
		subjects.GET("/:id", anyStaff, ctrl.SubjectController.GetByID)
		subjects.PUT("/:id", adminOnly, ctrl.SubjectController.Update)
		subjects.DELETE("/:id", adminOnly, ctrl.SubjectController.Delete)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.POST("", adminOnly, ctrl.AssignmentController.Create)
		assignments.GET("", anyStaff, ctrl.AssignmentController.GetAll)
		assignments.GET("/:id", anyStaff, ctrl.AssignmentController.GetByID)
		assignments.GET("/:id/grades", teacherOnly, ctrl.AssignmentController.GetGrades)
		assignments.PUT("/:id", adminOnly, ctrl.AssignmentController.Update)
		assignments.DELETE("/:id", adminOnly, ctrl.AssignmentController.Delete)
	}

	// Teacher: grade entry and correction
	grades := authenticated.Group("/grades")
	grades.Use(teacherOnly)
	{
		grades.POST("", ctrl.GradeController.Enter)
		grades.PUT("/:id", ctrl.GradeController.Update)
		grades.DELETE("/:id", ctrl.GradeController.Delete)
	}

	// Teacher self-service
	teacher := authenticated.Group("/teacher")
	teacher.Use(teacherOnly)
	{
		teacher.GET("/assignments", ctrl.TeacherController.MyAssignments)
		teacher.GET("/grades", ctrl.TeacherController.MyGrades)
	}

	// Student self-service
	student := authenticated.Group("/student")
	student.Use(studentOnly)
	{
		student.GET("/grades", ctrl.StudentController.MyGrades)
	}

	// Administrator: aggregate reporting
	statistics := authenticated.Group("/statistics")
	statistics.Use(adminOnly)
	{
		statistics.GET("/system", ctrl.StatisticsController.System)
		statistics.GET("/teachers/:id", ctrl.StatisticsController.Teacher)
		statistics.GET("/students/:id", ctrl.StatisticsController.Student)
		statistics.GET("/groups/:id", ctrl.StatisticsController.Group)
		statistics.GET("/subjects/:id", ctrl.StatisticsController.Subject)
		statistics.GET("/grades/distribution", ctrl.StatisticsController.Distribution)
	}
}
