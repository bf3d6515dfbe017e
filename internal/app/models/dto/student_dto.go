package dto

import "github.com/baris/acadrecords/internal/app/models"

// CreateStudentRequest defines the payload for registering a student.
// The account username is derived from the first name and the initial
// password from the last name; both can be rotated afterwards.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Ana"`
	LastName  string `json:"lastName" binding:"required" example:"Petrova"`
	Email     string `json:"email" binding:"required,email" example:"ana@university.edu"`
	GroupID   *int64 `json:"groupId,omitempty" example:"1"`
}

// UpdateStudentRequest defines the payload for updating a student profile.
// A nil GroupID removes the student from its current group.
type UpdateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	GroupID   *int64 `json:"groupId,omitempty"`
}

// StudentResponse is the API projection of a student profile
type StudentResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	GroupID   *int64 `json:"groupId,omitempty"`
	GroupName string `json:"groupName,omitempty"`
}

// NewStudentResponse maps a student model to its API projection
func NewStudentResponse(student *models.Student) StudentResponse {
	response := StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		FullName:  student.FullName(),
		Email:     student.Email,
		GroupID:   student.GroupID,
	}
	if student.Group != nil {
		response.GroupName = student.Group.Name
	}
	return response
}

// NewStudentResponses maps a slice of students
func NewStudentResponses(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}
