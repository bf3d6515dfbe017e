package dto

// CreateSubjectRequest defines the payload for creating a subject
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Algorithms"`
	Code        string `json:"code" binding:"required" example:"CS201"`
	Credits     int    `json:"credits" example:"6"`
	Description string `json:"description,omitempty"`
}

// UpdateSubjectRequest defines the payload for updating a subject
type UpdateSubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Credits     int    `json:"credits"`
	Description string `json:"description,omitempty"`
}
