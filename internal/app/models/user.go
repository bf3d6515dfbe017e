package models

import (
	"time"
)

// Role identifies the access level of a user account.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleTeacher       Role = "TEACHER"
	RoleStudent       Role = "STUDENT"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User defines the account model based on the 'users' table.
// The role is fixed at creation time and decides which profile table
// (students, teachers, administrators) shares the user's identifier.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alice"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      Role      `json:"role" db:"role" example:"STUDENT"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// Student defines the student profile based on the 'students' table.
// A student shares its identifier with the underlying user account.
type Student struct {
	ID        int64       `json:"id" db:"id"`
	FirstName string      `json:"firstName" db:"first_name"`
	LastName  string      `json:"lastName" db:"last_name"`
	Email     string      `json:"email" db:"email"`
	GroupID   *int64      `json:"groupId,omitempty" db:"group_id"` // nullable, student may be unassigned
	Group     *StudyGroup `json:"group,omitempty"`                 // Relation, no db tag
}

// FullName returns the display name for the student.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Teacher defines the teacher profile based on the 'teachers' table.
type Teacher struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// FullName returns the display name for the teacher.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// Administrator defines the administrator profile based on the 'administrators' table.
type Administrator struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// FullName returns the display name for the administrator.
func (a *Administrator) FullName() string {
	return a.FirstName + " " + a.LastName
}
