package services

import (
	"context"

	"github.com/baris/acadrecords/internal/app/models"
)

// The gateway interfaces describe the persistence operations the services
// depend on. The pgx repositories satisfy them; tests substitute in-memory
// implementations.

// UserGateway persists user accounts
type UserGateway interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeleteUser(ctx context.Context, id int64) error
}

// StudentGateway persists student profiles
type StudentGateway interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	SetGroup(ctx context.Context, studentID int64, groupID *int64) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// TeacherGateway persists teacher profiles
type TeacherGateway interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AdministratorGateway persists administrator profiles
type AdministratorGateway interface {
	Create(ctx context.Context, admin *models.Administrator) error
	GetByUsername(ctx context.Context, username string) (*models.Administrator, error)
}

// GroupGateway persists study groups
type GroupGateway interface {
	Create(ctx context.Context, group *models.StudyGroup) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudyGroup, error)
	GetByName(ctx context.Context, name string) (*models.StudyGroup, error)
	GetAll(ctx context.Context) ([]*models.StudyGroup, error)
	Update(ctx context.Context, group *models.StudyGroup) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	NameTakenByOther(ctx context.Context, name string, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// SubjectGateway persists subjects
type SubjectGateway interface {
	Create(ctx context.Context, subject *models.Subject) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CodeTakenByOther(ctx context.Context, code string, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AssignmentGateway persists subject assignments
type AssignmentGateway interface {
	Create(ctx context.Context, assignment *models.SubjectAssignment) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SubjectAssignment, error)
	GetAll(ctx context.Context) ([]*models.SubjectAssignment, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.SubjectAssignment, error)
	GetBySubject(ctx context.Context, subjectID int64) ([]*models.SubjectAssignment, error)
	GetByGroup(ctx context.Context, groupID int64) ([]*models.SubjectAssignment, error)
	GetByAcademicYear(ctx context.Context, academicYear string) ([]*models.SubjectAssignment, error)
	Update(ctx context.Context, assignment *models.SubjectAssignment) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByFields(ctx context.Context, subjectID, teacherID, groupID int64, academicYear, semester string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// GradeGateway persists grades
type GradeGateway interface {
	Create(ctx context.Context, grade *models.Grade) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
	ExistsByStudentAndAssignment(ctx context.Context, studentID, assignmentID int64) (bool, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
	GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Grade, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Grade, error)
	GetByTeacherAndSubject(ctx context.Context, teacherID, subjectID int64) ([]*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
	CountByTeacher(ctx context.Context, teacherID int64) (int64, error)
	CountByStudent(ctx context.Context, studentID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
