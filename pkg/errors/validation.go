package errors

import (
	"unicode"
)

// ValidateNodeID validates a node identifier from external input.
// It rejects IDs that would break deterministic layout or collide with the
// synthetic nodes the pipeline creates.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No leading underscore (reserved for synthetic nodes)
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeBadGraph, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeBadGraph, "node ID too long (max 256 characters)")
	}

	if id[0] == '_' {
		return New(ErrCodeBadGraph, "node ID %q uses the reserved underscore prefix", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeBadGraph, "node ID %q contains control characters", id)
		}
	}

	return nil
}
