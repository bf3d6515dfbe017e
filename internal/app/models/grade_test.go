package models

import "testing"

func TestGradeLevel(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{0, "Unsatisfactory"},
		{4, "Unsatisfactory"},
		{5, "Satisfactory"},
		{6, "Satisfactory"},
		{7, "Good"},
		{8, "Good"},
		{9, "Excellent"},
		{10, "Excellent"},
	}
	for _, tc := range cases {
		grade := &Grade{Value: tc.value}
		if got := grade.Level(); got != tc.want {
			t.Errorf("Level(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestGradeIsPassing(t *testing.T) {
	if (&Grade{Value: 4}).IsPassing() {
		t.Error("4 should not pass")
	}
	if !(&Grade{Value: 5}).IsPassing() {
		t.Error("5 should pass")
	}
}
