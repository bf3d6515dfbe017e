package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

func newGroupService() (*GroupService, *fakeGroupRepo, *fakeStudentRepo) {
	groups := newFakeGroupRepo()
	students := newFakeStudentRepo()
	return NewGroupService(groups, students), groups, students
}

func TestGroupCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a group", func(t *testing.T) {
		svc, _, _ := newGroupService()
		group, err := svc.Create(ctx, "CS-101", 2024)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if group.ID == 0 || group.Name != "CS-101" || group.Year != 2024 {
			t.Errorf("unexpected group %+v", group)
		}
	})

	t.Run("rejects blank names", func(t *testing.T) {
		svc, _, _ := newGroupService()
		_, err := svc.Create(ctx, "   ", 2024)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("Create() error = %v, want validation failure", err)
		}
	})

	t.Run("rejects overlong names", func(t *testing.T) {
		svc, _, _ := newGroupService()
		_, err := svc.Create(ctx, strings.Repeat("x", 51), 2024)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("Create() error = %v, want validation failure", err)
		}
	})

	t.Run("rejects years outside the range", func(t *testing.T) {
		svc, _, _ := newGroupService()
		for _, year := range []int{1999, 2101} {
			_, err := svc.Create(ctx, "CS-101", year)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("Create(year=%d) error = %v, want validation failure", year, err)
			}
		}
		_, err := svc.Create(ctx, "CS-101", 1999)
		if got := err.Error(); got != "Year must be between 2000 and 2100, got: 1999" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("accepts boundary years", func(t *testing.T) {
		svc, _, _ := newGroupService()
		if _, err := svc.Create(ctx, "A", 2000); err != nil {
			t.Errorf("Create(2000) error = %v", err)
		}
		if _, err := svc.Create(ctx, "B", 2100); err != nil {
			t.Errorf("Create(2100) error = %v", err)
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		svc, _, _ := newGroupService()
		if _, err := svc.Create(ctx, "CS-101", 2024); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		_, err := svc.Create(ctx, "CS-101", 2025)
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Fatalf("Create() error = %v, want duplicate", err)
		}
	})
}

func TestGroupUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps names unique across groups", func(t *testing.T) {
		svc, _, _ := newGroupService()
		if _, err := svc.Create(ctx, "CS-101", 2024); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		second, err := svc.Create(ctx, "CS-102", 2024)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if _, err := svc.Update(ctx, second.ID, "CS-101", 2024); !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Fatalf("Update() error = %v, want duplicate", err)
		}
	})

	t.Run("allows keeping the own name", func(t *testing.T) {
		svc, _, _ := newGroupService()
		group, err := svc.Create(ctx, "CS-101", 2024)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		updated, err := svc.Update(ctx, group.ID, "CS-101", 2025)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Year != 2025 {
			t.Errorf("Year = %d, want 2025", updated.Year)
		}
	})

	t.Run("rejects unknown groups", func(t *testing.T) {
		svc, _, _ := newGroupService()
		if _, err := svc.Update(ctx, 42, "CS-101", 2024); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Fatalf("Update() error = %v, want not found", err)
		}
	})
}

func TestGroupDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupService()

	group, err := svc.Create(ctx, "CS-101", 2024)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(ctx, group.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, group.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("second Delete() error = %v, want not found", err)
	}
}

func TestGroupMembers(t *testing.T) {
	ctx := context.Background()
	svc, groups, students := newGroupService()

	groups.add(&models.StudyGroup{ID: 1, Name: "CS-101", Year: 2024})
	groupID := int64(1)
	students.add(&models.Student{ID: 100, FirstName: "Ana", LastName: "Petrova", GroupID: &groupID}, "ana")
	students.add(&models.Student{ID: 101, FirstName: "Boris", LastName: "Ivanov"}, "boris")

	members, err := svc.GetMembers(ctx, 1)
	if err != nil {
		t.Fatalf("GetMembers() error = %v", err)
	}
	if len(members) != 1 || members[0].ID != 100 {
		t.Errorf("unexpected members %+v", members)
	}

	if _, err := svc.GetMembers(ctx, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetMembers() error = %v, want not found", err)
	}
}
