package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

type statsFixture struct {
	svc      *StatisticsService
	grades   *fakeGradeRepo
	students *fakeStudentRepo
}

// newStatsFixture seeds two groups, three students, two teachers, two
// subjects and three assignments, then hands out grade entry to the tests.
func newStatsFixture() *statsFixture {
	groups := newFakeGroupRepo()
	groups.add(&models.StudyGroup{ID: 1, Name: "CS-101", Year: 2024})
	groups.add(&models.StudyGroup{ID: 2, Name: "CS-102", Year: 2024})

	students := newFakeStudentRepo()
	groupOne, groupTwo := int64(1), int64(2)
	students.add(&models.Student{ID: 100, FirstName: "Ana", LastName: "Petrova", GroupID: &groupOne}, "ana")
	students.add(&models.Student{ID: 101, FirstName: "Boris", LastName: "Ivanov", GroupID: &groupOne}, "boris")
	students.add(&models.Student{ID: 102, FirstName: "Vera", LastName: "Koleva", GroupID: &groupTwo}, "vera")

	teachers := newFakeTeacherRepo()
	teachers.add(&models.Teacher{ID: 10, FirstName: "Ivan", LastName: "Dimitrov"}, "ivan")
	teachers.add(&models.Teacher{ID: 11, FirstName: "Elena", LastName: "Georgieva"}, "elena")

	subjects := newFakeSubjectRepo()
	subjects.add(&models.Subject{ID: 1, Name: "Algorithms", Code: "CS201", Credits: 6})
	subjects.add(&models.Subject{ID: 2, Name: "Databases", Code: "CS301", Credits: 5})

	assignments := newFakeAssignmentRepo()
	// Teacher 10 teaches both subjects to group 1, teacher 11 teaches
	// subject 2 to group 2.
	assignments.add(&models.SubjectAssignment{ID: 1000, SubjectID: 1, TeacherID: 10, GroupID: 1, AcademicYear: "2024/2025", Semester: "Fall"})
	assignments.add(&models.SubjectAssignment{ID: 1001, SubjectID: 2, TeacherID: 10, GroupID: 1, AcademicYear: "2024/2025", Semester: "Spring"})
	assignments.add(&models.SubjectAssignment{ID: 1002, SubjectID: 2, TeacherID: 11, GroupID: 2, AcademicYear: "2024/2025", Semester: "Fall"})

	grades := newFakeGradeRepo(assignments, students)
	return &statsFixture{
		svc:      NewStatisticsService(students, teachers, groups, subjects, assignments, grades),
		grades:   grades,
		students: students,
	}
}

func (f *statsFixture) addGrade(t *testing.T, studentID, assignmentID int64, value int) {
	t.Helper()
	_, err := f.grades.Create(context.Background(), &models.Grade{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Value:        value,
		Date:         time.Now(),
	})
	if err != nil {
		t.Fatalf("seeding grade failed: %v", err)
	}
}

func TestSystemStatistics(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture()
	f.addGrade(t, 100, 1000, 8)
	f.addGrade(t, 101, 1000, 4)

	stats, err := f.svc.SystemStatistics(ctx)
	if err != nil {
		t.Fatalf("SystemStatistics() error = %v", err)
	}
	if stats.TotalStudents != 3 || stats.TotalTeachers != 2 || stats.TotalGroups != 2 {
		t.Errorf("unexpected entity counts %+v", stats)
	}
	if stats.TotalSubjects != 2 || stats.TotalAssignments != 3 || stats.TotalGrades != 2 {
		t.Errorf("unexpected activity counts %+v", stats)
	}
}

func TestTeacherStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("counts a student graded twice once", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)
		f.addGrade(t, 100, 1001, 6)

		stats, err := f.svc.TeacherStatistics(ctx, 10)
		if err != nil {
			t.Fatalf("TeacherStatistics() error = %v", err)
		}
		if stats.TotalAssignments != 2 {
			t.Errorf("TotalAssignments = %d, want 2", stats.TotalAssignments)
		}
		// Only student 100 was graded; ungraded classmates stay out and the
		// second grade does not count the student again.
		if stats.TotalStudents != 1 {
			t.Errorf("TotalStudents = %d, want 1", stats.TotalStudents)
		}
		if stats.TotalGrades != 2 {
			t.Errorf("TotalGrades = %d, want 2", stats.TotalGrades)
		}
		if stats.AverageGrade != 7 {
			t.Errorf("AverageGrade = %v, want 7", stats.AverageGrade)
		}
	})

	t.Run("counts each distinct graded student", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)
		f.addGrade(t, 101, 1000, 6)

		stats, err := f.svc.TeacherStatistics(ctx, 10)
		if err != nil {
			t.Fatalf("TeacherStatistics() error = %v", err)
		}
		if stats.TotalStudents != 2 {
			t.Errorf("TotalStudents = %d, want 2", stats.TotalStudents)
		}
	})

	t.Run("rejects unknown teachers", func(t *testing.T) {
		f := newStatsFixture()
		if _, err := f.svc.TeacherStatistics(ctx, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("TeacherStatistics() error = %v, want not found", err)
		}
	})
}

func TestStudentStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("splits passing and failing grades", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)
		f.addGrade(t, 100, 1001, 4)

		stats, err := f.svc.StudentStatistics(ctx, 100)
		if err != nil {
			t.Fatalf("StudentStatistics() error = %v", err)
		}
		if stats.TotalGrades != 2 || stats.PassingGrades != 1 || stats.FailingGrades != 1 {
			t.Errorf("unexpected statistics %+v", stats)
		}
		if stats.AverageGrade != 6 {
			t.Errorf("AverageGrade = %v, want 6", stats.AverageGrade)
		}
	})

	t.Run("reports zero averages without grades", func(t *testing.T) {
		f := newStatsFixture()
		stats, err := f.svc.StudentStatistics(ctx, 102)
		if err != nil {
			t.Fatalf("StudentStatistics() error = %v", err)
		}
		if stats.TotalGrades != 0 || stats.AverageGrade != 0 {
			t.Errorf("unexpected statistics %+v", stats)
		}
	})

	t.Run("rejects unknown students", func(t *testing.T) {
		f := newStatsFixture()
		if _, err := f.svc.StudentStatistics(ctx, 999); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("StudentStatistics() error = %v, want not found", err)
		}
	})
}

func TestGroupStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps other groups' grades out of the average", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)
		f.addGrade(t, 102, 1002, 5)

		stats, err := f.svc.GroupStatistics(ctx, 1)
		if err != nil {
			t.Fatalf("GroupStatistics() error = %v", err)
		}
		if stats.StudentCount != 2 || stats.AssignmentCount != 2 {
			t.Errorf("unexpected statistics %+v", stats)
		}
		if stats.AverageGrade != 8 {
			t.Errorf("AverageGrade = %v, want 8", stats.AverageGrade)
		}
	})

	t.Run("grades follow a student who changes group", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)

		newGroup := int64(2)
		if err := f.students.SetGroup(ctx, 100, &newGroup); err != nil {
			t.Fatalf("SetGroup() error = %v", err)
		}

		moved, err := f.svc.GroupStatistics(ctx, 2)
		if err != nil {
			t.Fatalf("GroupStatistics() error = %v", err)
		}
		if moved.AverageGrade != 8 {
			t.Errorf("new group AverageGrade = %v, want 8", moved.AverageGrade)
		}

		former, err := f.svc.GroupStatistics(ctx, 1)
		if err != nil {
			t.Fatalf("GroupStatistics() error = %v", err)
		}
		if former.AverageGrade != 0 {
			t.Errorf("former group AverageGrade = %v, want 0", former.AverageGrade)
		}
	})

	t.Run("rejects unknown groups", func(t *testing.T) {
		f := newStatsFixture()
		if _, err := f.svc.GroupStatistics(ctx, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("GroupStatistics() error = %v, want not found", err)
		}
	})
}

func TestSubjectStatistics(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture()
	f.addGrade(t, 100, 1000, 8)
	f.addGrade(t, 101, 1001, 6)
	f.addGrade(t, 102, 1002, 4)

	stats, err := f.svc.SubjectStatistics(ctx, 2)
	if err != nil {
		t.Fatalf("SubjectStatistics() error = %v", err)
	}
	// Subject 2 runs for both groups, so all three students count.
	if stats.AssignmentCount != 2 || stats.StudentCount != 3 {
		t.Errorf("unexpected statistics %+v", stats)
	}
	if stats.GradeCount != 2 || stats.AverageGrade != 5 {
		t.Errorf("unexpected grade figures %+v", stats)
	}

	if _, err := f.svc.SubjectStatistics(ctx, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("SubjectStatistics() error = %v, want not found", err)
	}
}

func TestGradeDistribution(t *testing.T) {
	ctx := context.Background()
	t.Run("reports all-zero bins without grades", func(t *testing.T) {
		f := newStatsFixture()
		distribution, err := f.svc.GradeDistribution(ctx)
		if err != nil {
			t.Fatalf("GradeDistribution() error = %v", err)
		}
		if len(distribution) != models.MaxGradeValue-models.MinGradeValue+1 {
			t.Fatalf("got %d bins, want %d", len(distribution), models.MaxGradeValue-models.MinGradeValue+1)
		}
		for value, count := range distribution {
			if count != 0 {
				t.Errorf("bin %d = %d, want 0", value, count)
			}
		}
	})

	t.Run("bins every grade by value", func(t *testing.T) {
		f := newStatsFixture()
		f.addGrade(t, 100, 1000, 8)
		f.addGrade(t, 101, 1000, 8)
		f.addGrade(t, 100, 1001, 9)
		f.addGrade(t, 101, 1001, 5)
		f.addGrade(t, 102, 1002, 3)

		distribution, err := f.svc.GradeDistribution(ctx)
		if err != nil {
			t.Fatalf("GradeDistribution() error = %v", err)
		}
		want := map[int]int64{8: 2, 9: 1, 5: 1, 3: 1}
		for value := models.MinGradeValue; value <= models.MaxGradeValue; value++ {
			if distribution[value] != want[value] {
				t.Errorf("bin %d = %d, want %d", value, distribution[value], want[value])
			}
		}
	})
}
