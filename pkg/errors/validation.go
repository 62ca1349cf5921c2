package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePlanID validates a plan identifier for safety and correctness.
// Plan ids become store keys - file names on disk, Redis keys, MongoDB
// document ids - so the validation is intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidatePlanID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPlanID, "plan id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidPlanID, "plan id too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlanID, "plan id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidPlanID, "plan id contains invalid characters: %q", pattern)
		}
	}

	if !planIDRegex.MatchString(id) {
		return New(ErrCodeInvalidPlanID, "invalid plan id: %q", id)
	}

	return nil
}

// planIDRegex matches plan ids safe for every store backend.
var planIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateDocumentFilename validates a plan document filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateDocumentFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidDocument, "document filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidDocument, "document filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidDocument, "document filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a file path under the store root for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidInput, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "path cannot contain backslashes")
	}

	return nil
}
