package dto

// CreateTeacherRequest defines the payload for registering a teacher
type CreateTeacherRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Ivan"`
	LastName  string `json:"lastName" binding:"required" example:"Dimitrov"`
	Email     string `json:"email" binding:"required,email" example:"ivan@university.edu"`
}

// UpdateTeacherRequest defines the payload for updating a teacher profile
type UpdateTeacherRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}
