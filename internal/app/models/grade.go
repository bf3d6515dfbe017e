package models

import (
	"time"
)

// Grade value bounds. A grade is an integer between 0 and 10 inclusive.
const (
	MinGradeValue = 0
	MaxGradeValue = 10
	PassingGrade  = 5
)

// Grade defines a single mark a teacher entered for a student against a
// subject assignment, based on the 'grades' table. At most one grade exists
// per (student, assignment) pair; the table carries a unique constraint so
// the invariant holds under concurrent writers as well.
type Grade struct {
	ID           int64              `json:"id" db:"id" example:"1"`
	StudentID    int64              `json:"studentId" db:"student_id"`
	AssignmentID int64              `json:"assignmentId" db:"assignment_id"`
	Value        int                `json:"value" db:"value" example:"8"`
	Date         time.Time          `json:"date" db:"date"`
	Comments     string             `json:"comments,omitempty" db:"comments"`
	Student      *Student           `json:"student,omitempty"`    // Relation, no db tag
	Assignment   *SubjectAssignment `json:"assignment,omitempty"` // Relation, no db tag
}

// IsPassing reports whether the grade counts as a pass.
func (g *Grade) IsPassing() bool {
	return g.Value >= PassingGrade
}

// Level maps the numeric value to its descriptive classification.
func (g *Grade) Level() string {
	switch {
	case g.Value >= 9:
		return "Excellent"
	case g.Value >= 7:
		return "Good"
	case g.Value >= 5:
		return "Satisfactory"
	default:
		return "Unsatisfactory"
	}
}
