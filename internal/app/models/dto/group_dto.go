package dto

// CreateGroupRequest defines the payload for creating a study group
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required" example:"CS-101"`
	Year int    `json:"year" binding:"required" example:"2024"`
}

// UpdateGroupRequest defines the payload for updating a study group
type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}
