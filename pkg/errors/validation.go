package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MinPlotSize is the smallest plot edge the generator accepts.
const MinPlotSize = 3

// MaxPlotSize bounds plot edges so a single request cannot allocate an
// arbitrarily large cell map.
const MaxPlotSize = 512

// ValidatePlotSize checks that a plot is between MinPlotSize and MaxPlotSize
// cells on both axes.
func ValidatePlotSize(width, height int) error {
	if width < MinPlotSize || height < MinPlotSize {
		return New(ErrCodeInvalidPlot, "plot size must be at least %dx%d, got %dx%d", MinPlotSize, MinPlotSize, width, height)
	}
	if width > MaxPlotSize || height > MaxPlotSize {
		return New(ErrCodeInvalidPlot, "plot size must be at most %dx%d, got %dx%d", MaxPlotSize, MaxPlotSize, width, height)
	}
	return nil
}

// componentNameRegex matches component names: lowercase words joined by dashes.
var componentNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateComponentName validates a component registry name.
func ValidateComponentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidComponent, "component name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidComponent, "component name too long (max 64 characters)")
	}
	if !componentNameRegex.MatchString(name) {
		return New(ErrCodeInvalidComponent, "invalid component name: %q", name)
	}
	return nil
}

// ValidatePath validates a user supplied relative file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidatePlanID validates a stored plan identifier (a canonical UUID).
func ValidatePlanID(id string) error {
	if !planIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid plan id: %q", id)
	}
	return nil
}

var planIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
