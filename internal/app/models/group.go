package models

// StudyGroup defines the cohort model based on the 'study_groups' table.
// Grades and subject assignments are scoped by group membership.
type StudyGroup struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"CS-101"`
	Year int    `json:"year" db:"year" example:"2024"`
}
