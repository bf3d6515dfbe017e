package services

import (
	"context"
	"fmt"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// StatisticsService computes aggregate reports over the academic records
type StatisticsService struct {
	studentRepo    StudentGateway
	teacherRepo    TeacherGateway
	groupRepo      GroupGateway
	subjectRepo    SubjectGateway
	assignmentRepo AssignmentGateway
	gradeRepo      GradeGateway
}

// NewStatisticsService creates a new StatisticsService instance
func NewStatisticsService(
	studentRepo StudentGateway,
	teacherRepo TeacherGateway,
	groupRepo GroupGateway,
	subjectRepo SubjectGateway,
	assignmentRepo AssignmentGateway,
	gradeRepo GradeGateway,
) *StatisticsService {
	return &StatisticsService{
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		groupRepo:      groupRepo,
		subjectRepo:    subjectRepo,
		assignmentRepo: assignmentRepo,
		gradeRepo:      gradeRepo,
	}
}

// SystemStatistics returns entity counts across the whole system
func (s *StatisticsService) SystemStatistics(ctx context.Context) (*dto.SystemStatistics, error) {
	stats := &dto.SystemStatistics{}
	var err error

	if stats.TotalStudents, err = s.studentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	if stats.TotalTeachers, err = s.teacherRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}
	if stats.TotalGroups, err = s.groupRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count study groups: %w", err)
	}
	if stats.TotalSubjects, err = s.subjectRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}
	if stats.TotalAssignments, err = s.assignmentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	if stats.TotalGrades, err = s.gradeRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count grades: %w", err)
	}
	return stats, nil
}

// TeacherStatistics aggregates the workload of one teacher
func (s *StatisticsService) TeacherStatistics(ctx context.Context, teacherID int64) (*dto.TeacherStatistics, error) {
	exists, err := s.teacherRepo.ExistsByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to check teacher: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("Teacher", "id", teacherID)
	}

	assignments, err := s.assignmentRepo.GetByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher assignments: %w", err)
	}

	grades, err := s.gradeRepo.GetByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher grades: %w", err)
	}

	// The student figure counts distinct students the teacher actually
	// graded, not the size of the groups the teacher is assigned to.
	seenStudents := make(map[int64]bool)
	for _, grade := range grades {
		seenStudents[grade.StudentID] = true
	}

	return &dto.TeacherStatistics{
		TotalAssignments: int64(len(assignments)),
		TotalStudents:    int64(len(seenStudents)),
		TotalGrades:      int64(len(grades)),
		AverageGrade:     averageGrade(grades),
	}, nil
}

// StudentStatistics aggregates the results of one student
func (s *StatisticsService) StudentStatistics(ctx context.Context, studentID int64) (*dto.StudentStatistics, error) {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("Student", "id", studentID)
	}

	grades, err := s.gradeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student grades: %w", err)
	}

	stats := &dto.StudentStatistics{
		TotalGrades:  int64(len(grades)),
		AverageGrade: averageGrade(grades),
	}
	for _, grade := range grades {
		if grade.IsPassing() {
			stats.PassingGrades++
		} else {
			stats.FailingGrades++
		}
	}
	return stats, nil
}

// GroupStatistics aggregates the results across one study group
func (s *StatisticsService) GroupStatistics(ctx context.Context, groupID int64) (*dto.GroupStatistics, error) {
	exists, err := s.groupRepo.ExistsByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to check study group: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("StudyGroup", "id", groupID)
	}

	studentCount, err := s.studentRepo.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count group students: %w", err)
	}
	assignments, err := s.assignmentRepo.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group assignments: %w", err)
	}

	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	// A grade follows its student: after a group move the grade counts
	// toward the student's current group, not the assignment's group.
	var groupGrades []*models.Grade
	for _, grade := range grades {
		if grade.Student != nil && grade.Student.GroupID != nil && *grade.Student.GroupID == groupID {
			groupGrades = append(groupGrades, grade)
		}
	}

	return &dto.GroupStatistics{
		StudentCount:    studentCount,
		AssignmentCount: int64(len(assignments)),
		AverageGrade:    averageGrade(groupGrades),
	}, nil
}

// SubjectStatistics aggregates the results across one subject
func (s *StatisticsService) SubjectStatistics(ctx context.Context, subjectID int64) (*dto.SubjectStatistics, error) {
	exists, err := s.subjectRepo.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subject: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("Subject", "id", subjectID)
	}

	assignments, err := s.assignmentRepo.GetBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subject assignments: %w", err)
	}

	seenGroups := make(map[int64]bool)
	var studentCount int64
	for _, assignment := range assignments {
		if seenGroups[assignment.GroupID] {
			continue
		}
		seenGroups[assignment.GroupID] = true
		count, err := s.studentRepo.CountByGroup(ctx, assignment.GroupID)
		if err != nil {
			return nil, fmt.Errorf("failed to count group students: %w", err)
		}
		studentCount += count
	}

	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	var subjectGrades []*models.Grade
	for _, grade := range grades {
		if grade.Assignment != nil && grade.Assignment.SubjectID == subjectID {
			subjectGrades = append(subjectGrades, grade)
		}
	}

	return &dto.SubjectStatistics{
		AssignmentCount: int64(len(assignments)),
		StudentCount:    studentCount,
		GradeCount:      int64(len(subjectGrades)),
		AverageGrade:    averageGrade(subjectGrades),
	}, nil
}

// GradeDistribution returns how many grades sit in each value bin. Every bin
// from the minimum to the maximum value is present even when empty.
func (s *StatisticsService) GradeDistribution(ctx context.Context) (map[int]int64, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}

	distribution := make(map[int]int64, models.MaxGradeValue-models.MinGradeValue+1)
	for value := models.MinGradeValue; value <= models.MaxGradeValue; value++ {
		distribution[value] = 0
	}
	for _, grade := range grades {
		distribution[grade.Value]++
	}
	return distribution, nil
}

func averageGrade(grades []*models.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum int
	for _, grade := range grades {
		sum += grade.Value
	}
	return float64(sum) / float64(len(grades))
}
