package errors

import (
	"strings"
	"unicode"
)

// ValidateSelector validates a decorator selector expression for basic
// well-formedness. Selector semantics are interpreted by the rendering
// front-end; this only rejects values that can never be meaningful.
//
// The validation rules are intentionally conservative:
//   - No empty selectors
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateSelector(selector string) error {
	if selector == "" {
		return New(ErrCodeInvalidSelector, "selector cannot be empty")
	}

	if len(selector) > 256 {
		return New(ErrCodeInvalidSelector, "selector too long (max 256 characters)")
	}

	for _, r := range selector {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSelector, "selector contains control characters")
		}
	}

	return nil
}

// ValidateAnnotationKind validates an annotation kind name.
// Kind names are lowerCamelCase identifiers such as "orientation" or
// "atomColor"; anything with spaces, path separators, or punctuation other
// than letters and digits is rejected.
func ValidateAnnotationKind(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidAnnotation, "annotation kind cannot be empty")
	}

	for _, r := range kind {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidAnnotation, "annotation kind %q contains invalid character %q", kind, r)
		}
	}

	return nil
}

// ValidateTypeName validates a registry type name key.
// Type names come from reflect or from configuration files; both should be
// plain Go type identifiers, optionally package-qualified.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "type name cannot be empty")
	}

	if strings.ContainsAny(name, " \t\n") {
		return New(ErrCodeInvalidConfig, "type name %q cannot contain whitespace", name)
	}

	return nil
}
