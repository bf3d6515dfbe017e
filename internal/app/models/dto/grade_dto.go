package dto

import (
	"time"

	"github.com/baris/acadrecords/internal/app/models"
)

// CreateGradeRequest defines the payload for entering a grade. The acting
// teacher is resolved from the verified token, never from the body.
type CreateGradeRequest struct {
	StudentID    int64  `json:"studentId" binding:"required" example:"3"`
	AssignmentID int64  `json:"assignmentId" binding:"required" example:"1"`
	Value        int    `json:"value" example:"8"`
	Comments     string `json:"comments,omitempty" example:"Solid exam"`
}

// UpdateGradeRequest defines the payload for replacing a grade's value and comments
type UpdateGradeRequest struct {
	Value    int    `json:"value" example:"9"`
	Comments string `json:"comments,omitempty"`
}

// GradeResponse is the API projection of a grade, including the derived
// classification which is never persisted
type GradeResponse struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"studentId"`
	AssignmentID int64     `json:"assignmentId"`
	Value        int       `json:"value"`
	Date         time.Time `json:"date"`
	Comments     string    `json:"comments,omitempty"`
	Level        string    `json:"level" example:"Good"`
	Passing      bool      `json:"passing"`
}

// NewGradeResponse maps a grade model to its API projection
func NewGradeResponse(grade *models.Grade) GradeResponse {
	return GradeResponse{
		ID:           grade.ID,
		StudentID:    grade.StudentID,
		AssignmentID: grade.AssignmentID,
		Value:        grade.Value,
		Date:         grade.Date,
		Comments:     grade.Comments,
		Level:        grade.Level(),
		Passing:      grade.IsPassing(),
	}
}

// NewGradeResponses maps a slice of grades
func NewGradeResponses(grades []*models.Grade) []GradeResponse {
	responses := make([]GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, NewGradeResponse(grade))
	}
	return responses
}
