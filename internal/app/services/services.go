// Package services implements the business rules of the academic records
// system on top of the persistence gateways.
package services

import (
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/auth"
)

// Services holds every service instance used by the application
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	TeacherService    *TeacherService
	GroupService      *GroupService
	SubjectService    *SubjectService
	AssignmentService *AssignmentService
	GradeService      *GradeService
	StatisticsService *StatisticsService
}

// NewServices wires all services over the repository set
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, hasher *auth.PasswordHasher) *Services {
	authService := NewAuthService(
		repos.UserRepository,
		repos.StudentRepository,
		repos.TeacherRepository,
		repos.AdministratorRepository,
		jwtService,
		hasher,
	)
	return &Services{
		AuthService: authService,
		StudentService: NewStudentService(
			repos.UserRepository,
			repos.StudentRepository,
			repos.GroupRepository,
			authService,
		),
		TeacherService: NewTeacherService(
			repos.UserRepository,
			repos.TeacherRepository,
			authService,
		),
		GroupService:   NewGroupService(repos.GroupRepository, repos.StudentRepository),
		SubjectService: NewSubjectService(repos.SubjectRepository, repos.AssignmentRepository),
		AssignmentService: NewAssignmentService(
			repos.AssignmentRepository,
			repos.SubjectRepository,
			repos.TeacherRepository,
			repos.GroupRepository,
		),
		GradeService: NewGradeService(
			repos.GradeRepository,
			repos.StudentRepository,
			repos.AssignmentRepository,
		),
		StatisticsService: NewStatisticsService(
			repos.StudentRepository,
			repos.TeacherRepository,
			repos.GroupRepository,
			repos.SubjectRepository,
			repos.AssignmentRepository,
			repos.GradeRepository,
		),
	}
}
