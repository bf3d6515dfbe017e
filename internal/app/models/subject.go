package models

// Subject defines the course model based on the 'subjects' table.
type Subject struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Algorithms"`
	Code        string `json:"code" db:"code" example:"CS201"`
	Credits     int    `json:"credits" db:"credits" example:"6"`
	Description string `json:"description,omitempty" db:"description"`
}
