// Package repositories provides data access implementations backed by PostgreSQL.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds every repository instance used by the application
type Repositories struct {
	UserRepository          *UserRepository
	StudentRepository       *StudentRepository
	TeacherRepository       *TeacherRepository
	AdministratorRepository *AdministratorRepository
	GroupRepository         *GroupRepository
	SubjectRepository       *SubjectRepository
	AssignmentRepository    *AssignmentRepository
	GradeRepository         *GradeRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(pool),
		StudentRepository:       NewStudentRepository(pool),
		TeacherRepository:       NewTeacherRepository(pool),
		AdministratorRepository: NewAdministratorRepository(pool),
		GroupRepository:         NewGroupRepository(pool),
		SubjectRepository:       NewSubjectRepository(pool),
		AssignmentRepository:    NewAssignmentRepository(pool),
		GradeRepository:         NewGradeRepository(pool),
	}
}
