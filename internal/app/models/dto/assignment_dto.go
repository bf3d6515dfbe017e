package dto

// CreateAssignmentRequest defines the payload for binding a subject to a
// teacher and a study group for one academic year and semester
type CreateAssignmentRequest struct {
	SubjectID    int64  `json:"subjectId" binding:"required" example:"1"`
	TeacherID    int64  `json:"teacherId" binding:"required" example:"2"`
	GroupID      int64  `json:"groupId" binding:"required" example:"1"`
	AcademicYear string `json:"academicYear" binding:"required" example:"2024/2025"`
	Semester     string `json:"semester" binding:"required" example:"Fall"`
}

// UpdateAssignmentRequest defines the payload for updating an assignment
type UpdateAssignmentRequest struct {
	SubjectID    int64  `json:"subjectId" binding:"required"`
	TeacherID    int64  `json:"teacherId" binding:"required"`
	GroupID      int64  `json:"groupId" binding:"required"`
	AcademicYear string `json:"academicYear" binding:"required"`
	Semester     string `json:"semester" binding:"required"`
}
