package models

// Semesters accepted for a subject assignment.
var ValidSemesters = []string{"Fall", "Spring", "Summer", "Winter"}

// IsValidSemester reports whether the given semester is one of the accepted values.
func IsValidSemester(semester string) bool {
	for _, s := range ValidSemesters {
		if s == semester {
			return true
		}
	}
	return false
}

// SubjectAssignment binds one subject to one teacher and one study group for a
// given academic year and semester. Grades are always entered against an
// assignment, never a bare subject. The (subject, teacher, group, year,
// semester) tuple is unique.
type SubjectAssignment struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	SubjectID    int64       `json:"subjectId" db:"subject_id"`
	TeacherID    int64       `json:"teacherId" db:"teacher_id"`
	GroupID      int64       `json:"groupId" db:"group_id"`
	AcademicYear string      `json:"academicYear" db:"academic_year" example:"2024/2025"`
	Semester     string      `json:"semester" db:"semester" example:"Fall"`
	Subject      *Subject    `json:"subject,omitempty"` // Relation, no db tag
	Teacher      *Teacher    `json:"teacher,omitempty"` // Relation, no db tag
	Group        *StudyGroup `json:"group,omitempty"`   // Relation, no db tag
}
