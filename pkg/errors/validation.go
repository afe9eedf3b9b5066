package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateOutputDir validates a directory that charts will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateCriterionLabel validates a criterion label used in charts and tables.
// Labels must be non-empty, single-line and at most 64 characters.
func ValidateCriterionLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidCriteria, "criterion label cannot be empty")
	}
	if len(label) > 64 {
		return New(ErrCodeInvalidCriteria, "criterion label too long (max 64 characters): %q", label)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCriteria, "criterion label contains control characters: %q", label)
		}
	}
	return nil
}

// ValidateDimensions validates a chart width and height in pixels.
func ValidateDimensions(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 100 || v > 10000 {
			return New(ErrCodeInvalidSize, "chart size %.0fx%.0f out of range (100-10000)", width, height)
		}
	}
	return nil
}
