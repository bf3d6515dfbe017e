package validation

import "testing"

func TestIsBlank(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
	}
	for _, tc := range cases {
		if got := IsBlank(tc.in); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"Ana.Petrova@Example.COM",
		"first+tag@sub.domain.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"ana@",
		"ana@example",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidAcademicYear(t *testing.T) {
	valid := []string{"2024/2025", "2000/2001", "1999/2000"}
	for _, year := range valid {
		if !IsValidAcademicYear(year) {
			t.Errorf("IsValidAcademicYear(%q) = false, want true", year)
		}
	}

	invalid := []string{"", "2024", "2024-2025", "24/25", "2024/20256", " 2024/2025"}
	for _, year := range invalid {
		if IsValidAcademicYear(year) {
			t.Errorf("IsValidAcademicYear(%q) = true, want false", year)
		}
	}
}

func TestIsValidGroupYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{1999, false},
		{2000, true},
		{2024, true},
		{2100, true},
		{2101, false},
	}
	for _, tc := range cases {
		if got := IsValidGroupYear(tc.year); got != tc.want {
			t.Errorf("IsValidGroupYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}
