package services

import (
	"context"
	"errors"
	"testing"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

type gradeFixture struct {
	svc         *GradeService
	students    *fakeStudentRepo
	assignments *fakeAssignmentRepo
	grades      *fakeGradeRepo
}

// newGradeFixture builds a service over one group (1), one student (100 in
// group 1), one ungrouped student (101), two teachers (10 and 11) and one
// assignment (1000) taught by teacher 10 for group 1.
func newGradeFixture() *gradeFixture {
	students := newFakeStudentRepo()
	groupID := int64(1)
	students.add(&models.Student{ID: 100, FirstName: "Ana", LastName: "Petrova", GroupID: &groupID}, "ana")
	students.add(&models.Student{ID: 101, FirstName: "Boris", LastName: "Ivanov"}, "boris")

	assignments := newFakeAssignmentRepo()
	assignments.add(&models.SubjectAssignment{
		ID: 1000, SubjectID: 1, TeacherID: 10, GroupID: 1,
		AcademicYear: "2024/2025", Semester: "Fall",
	})

	grades := newFakeGradeRepo(assignments, students)
	return &gradeFixture{
		svc:         NewGradeService(grades, students, assignments),
		students:    students,
		assignments: assignments,
		grades:      grades,
	}
}

func TestEnterGrade(t *testing.T) {
	ctx := context.Background()

	t.Run("records a grade under the teacher's assignment", func(t *testing.T) {
		f := newGradeFixture()
		grade, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 8, "solid exam")
		if err != nil {
			t.Fatalf("EnterGrade() error = %v", err)
		}
		if grade.ID == 0 {
			t.Error("expected a generated grade ID")
		}
		if grade.Value != 8 || grade.Comments != "solid exam" {
			t.Errorf("unexpected grade %+v", grade)
		}
		if grade.Date.IsZero() {
			t.Error("expected the grade date to be set")
		}
	})

	t.Run("rejects unknown student", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.EnterGrade(ctx, 10, 999, 1000, 8, "")
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("EnterGrade() error = %v, want not found", err)
		}
	})

	t.Run("rejects unknown assignment", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.EnterGrade(ctx, 10, 100, 9999, 8, "")
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("EnterGrade() error = %v, want not found", err)
		}
	})

	t.Run("rejects a teacher who does not own the assignment", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.EnterGrade(ctx, 11, 100, 1000, 8, "")
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("EnterGrade() error = %v, want permission denied", err)
		}
		if err.Error() != "You are not assigned to teach this subject" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("rejects a student outside the assignment's group", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.EnterGrade(ctx, 10, 101, 1000, 8, "")
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("EnterGrade() error = %v, want validation failure", err)
		}
		if err.Error() != "Student is not in the group for this subject" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("rejects a second grade for the same student and assignment", func(t *testing.T) {
		f := newGradeFixture()
		if _, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 8, ""); err != nil {
			t.Fatalf("first EnterGrade() error = %v", err)
		}
		_, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 9, "")
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Fatalf("EnterGrade() error = %v, want duplicate", err)
		}
		if err.Error() != "Grade already exists for this student and assignment. Use update instead." {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("rejects the duplicate regardless of entry order", func(t *testing.T) {
		f := newGradeFixture()
		if _, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 9, ""); err != nil {
			t.Fatalf("first EnterGrade() error = %v", err)
		}
		_, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 8, "")
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Fatalf("EnterGrade() error = %v, want duplicate", err)
		}
	})

	t.Run("rejects values outside the scale", func(t *testing.T) {
		f := newGradeFixture()
		for _, value := range []int{-1, 11, 100} {
			_, err := f.svc.EnterGrade(ctx, 10, 100, 1000, value, "")
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("EnterGrade(%d) error = %v, want validation failure", value, err)
			}
			if err.Error() != "Grade must be between 0 and 10" {
				t.Errorf("unexpected message %q", err.Error())
			}
		}
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		// A fresh fixture per value, since a student holds one grade per
		// assignment.
		for _, value := range []int{0, 10} {
			f := newGradeFixture()
			if _, err := f.svc.EnterGrade(ctx, 10, 100, 1000, value, ""); err != nil {
				t.Errorf("EnterGrade(%d) error = %v", value, err)
			}
		}
	})

	t.Run("checks ownership before the value bounds", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.EnterGrade(ctx, 11, 100, 1000, 99, "")
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("EnterGrade() error = %v, want permission denied before validation", err)
		}
	})

	t.Run("rejects oversized comments", func(t *testing.T) {
		f := newGradeFixture()
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		_, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 8, string(long))
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("EnterGrade() error = %v, want validation failure", err)
		}
	})
}

func TestUpdateGrade(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces value and comments", func(t *testing.T) {
		f := newGradeFixture()
		grade, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "first try")
		if err != nil {
			t.Fatalf("EnterGrade() error = %v", err)
		}

		updated, err := f.svc.UpdateGrade(ctx, 10, grade.ID, 9, "after retake")
		if err != nil {
			t.Fatalf("UpdateGrade() error = %v", err)
		}
		if updated.Value != 9 || updated.Comments != "after retake" {
			t.Errorf("unexpected grade %+v", updated)
		}
	})

	t.Run("rejects a teacher who did not assign the grade", func(t *testing.T) {
		f := newGradeFixture()
		grade, _ := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "")

		_, err := f.svc.UpdateGrade(ctx, 11, grade.ID, 9, "")
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("UpdateGrade() error = %v, want permission denied", err)
		}
		if err.Error() != "You can only edit grades you assigned" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("rejects values outside the scale", func(t *testing.T) {
		f := newGradeFixture()
		grade, _ := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "")

		_, err := f.svc.UpdateGrade(ctx, 10, grade.ID, 11, "")
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("UpdateGrade() error = %v, want validation failure", err)
		}
	})

	t.Run("rejects unknown grade", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.UpdateGrade(ctx, 10, 42, 9, "")
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("UpdateGrade() error = %v, want not found", err)
		}
	})

	t.Run("only the entering teacher can correct the grade", func(t *testing.T) {
		f := newGradeFixture()
		grade, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "")
		if err != nil {
			t.Fatalf("EnterGrade() error = %v", err)
		}
		if _, err := f.svc.UpdateGrade(ctx, 11, grade.ID, 9, ""); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("UpdateGrade() by another teacher error = %v, want permission denied", err)
		}
		updated, err := f.svc.UpdateGrade(ctx, 10, grade.ID, 9, "")
		if err != nil {
			t.Fatalf("UpdateGrade() by the owner error = %v", err)
		}
		if updated.Value != 9 {
			t.Errorf("Value = %d, want 9", updated.Value)
		}
	})
}

func TestDeleteGrade(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the grade and returns the removed record", func(t *testing.T) {
		f := newGradeFixture()
		grade, _ := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "")

		deleted, err := f.svc.DeleteGrade(ctx, 10, grade.ID)
		if err != nil {
			t.Fatalf("DeleteGrade() error = %v", err)
		}
		if deleted.ID != grade.ID || deleted.Value != 6 {
			t.Errorf("unexpected deleted grade %+v", deleted)
		}
		if _, err := f.svc.GetByID(ctx, grade.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Errorf("grade still present after delete, err = %v", err)
		}
	})

	t.Run("rejects a teacher who did not assign the grade", func(t *testing.T) {
		f := newGradeFixture()
		grade, _ := f.svc.EnterGrade(ctx, 10, 100, 1000, 6, "")

		_, err := f.svc.DeleteGrade(ctx, 11, grade.ID)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("DeleteGrade() error = %v, want permission denied", err)
		}
		if err.Error() != "You can only delete grades you assigned" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("rejects unknown grade", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.DeleteGrade(ctx, 10, 42)
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("DeleteGrade() error = %v, want not found", err)
		}
	})
}

func TestGetAssignmentGrades(t *testing.T) {
	ctx := context.Background()

	t.Run("lists grades for the owning teacher", func(t *testing.T) {
		f := newGradeFixture()
		if _, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 7, ""); err != nil {
			t.Fatalf("EnterGrade() error = %v", err)
		}

		grades, err := f.svc.GetAssignmentGrades(ctx, 10, 1000)
		if err != nil {
			t.Fatalf("GetAssignmentGrades() error = %v", err)
		}
		if len(grades) != 1 {
			t.Errorf("got %d grades, want 1", len(grades))
		}
	})

	t.Run("hides grades from other teachers", func(t *testing.T) {
		f := newGradeFixture()
		_, err := f.svc.GetAssignmentGrades(ctx, 11, 1000)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("GetAssignmentGrades() error = %v, want permission denied", err)
		}
	})
}

func TestGetStudentGrades(t *testing.T) {
	ctx := context.Background()
	f := newGradeFixture()

	if _, err := f.svc.GetStudentGrades(ctx, 999); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetStudentGrades() error = %v, want not found", err)
	}

	if _, err := f.svc.EnterGrade(ctx, 10, 100, 1000, 7, ""); err != nil {
		t.Fatalf("EnterGrade() error = %v", err)
	}
	grades, err := f.svc.GetStudentGrades(ctx, 100)
	if err != nil {
		t.Fatalf("GetStudentGrades() error = %v", err)
	}
	if len(grades) != 1 {
		t.Errorf("got %d grades, want 1", len(grades))
	}
}
