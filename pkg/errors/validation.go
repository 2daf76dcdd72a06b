package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// boardIDRegex matches usable board identifiers: URL- and filename-safe,
// starting with an alphanumeric.
var boardIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateBoardID validates a board identifier for safety and correctness.
// Board IDs appear in URLs, cache keys, and file names, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - Alphanumerics, dots, dashes, and underscores only
//   - Must start with an alphanumeric (no hidden files)
func ValidateBoardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBoard, "board id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidBoard, "board id too long (max 128 characters)")
	}

	if !boardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidBoard, "invalid board id: %q", id)
	}

	return nil
}

// ValidateObjectName validates a display name for an object or board.
// Names are free-form but must not carry control characters into rendered
// output or serialized documents.
func ValidateObjectName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidObject, "name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidObject, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a file path for import/export safety.
// It prevents path traversal attacks and ensures reasonable path length.
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

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
