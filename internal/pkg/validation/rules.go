package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns and bounds
var (
	// Academic year format, e.g. "2024/2025"
	AcademicYearPattern = `^\d{4}/\d{4}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Group name max length
	GroupNameMaxLength = 50

	// Grade comments max length
	CommentsMaxLength = 500

	// Study group year range
	MinGroupYear = 2000
	MaxGroupYear = 2100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	AcademicYear *regexp.Regexp
	Email        *regexp.Regexp
}{
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
	Email:        regexp.MustCompile(EmailPattern),
}

// IsBlank reports whether a string is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// IsValidAcademicYear reports whether the value matches the YYYY/YYYY format.
func IsValidAcademicYear(academicYear string) bool {
	return CompiledPatterns.AcademicYear.MatchString(academicYear)
}

// IsValidGroupYear reports whether the year falls within the accepted range.
func IsValidGroupYear(year int) bool {
	return year >= MinGroupYear && year <= MaxGroupYear
}
