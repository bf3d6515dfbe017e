package dto

// SystemStatistics holds system-wide entity counts
type SystemStatistics struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalTeachers    int64 `json:"totalTeachers"`
	TotalGroups      int64 `json:"totalGroups"`
	TotalSubjects    int64 `json:"totalSubjects"`
	TotalGrades      int64 `json:"totalGrades"`
	TotalAssignments int64 `json:"totalAssignments"`
}

// TeacherStatistics aggregates a teacher's workload
type TeacherStatistics struct {
	TotalAssignments int64   `json:"totalAssignments"`
	TotalStudents    int64   `json:"totalStudents"`
	TotalGrades      int64   `json:"totalGrades"`
	AverageGrade     float64 `json:"averageGrade"`
}

// StudentStatistics aggregates a student's results
type StudentStatistics struct {
	TotalGrades   int64   `json:"totalGrades"`
	AverageGrade  float64 `json:"averageGrade"`
	PassingGrades int64   `json:"passingGrades"`
	FailingGrades int64   `json:"failingGrades"`
}

// GroupStatistics aggregates results across a study group
type GroupStatistics struct {
	StudentCount    int64   `json:"studentCount"`
	AssignmentCount int64   `json:"assignmentCount"`
	AverageGrade    float64 `json:"averageGrade"`
}

// SubjectStatistics aggregates results across a subject
type SubjectStatistics struct {
	AssignmentCount int64   `json:"assignmentCount"`
	StudentCount    int64   `json:"studentCount"`
	GradeCount      int64   `json:"gradeCount"`
	AverageGrade    float64 `json:"averageGrade"`
}
