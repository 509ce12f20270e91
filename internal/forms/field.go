package forms

import (
	"regexp"
	"strings"
)

// Validation messages shown next to the offending field.
const (
	MsgRequired      = "This field is required"
	MsgInvalidEmail  = "Enter an email address in the correct format"
	MsgInvalidChoice = "Select one of the listed options"
)

// Conservative shape check: local part, "@", domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldType selects the validation rule applied to a non-empty value.
type FieldType int

const (
	// Text has no shape constraint beyond presence.
	Text FieldType = iota
	// Email must match emailPattern when non-empty.
	Email
	// Choice must be one of the field's declared choices when non-empty.
	Choice
	// Flag is a boolean-like control; never validated independently.
	Flag
)

// Field is one declared input of a schema. Immutable once declared.
type Field struct {
	Name     string
	Label    string
	Required bool
	Type     FieldType
	Choices  []string
}

// Validate runs the field's rules against a raw submitted value and
// returns every failed rule's message. A nil result means the value is
// acceptable. Pure; no state is touched.
func (f Field) Validate(raw string) []string {
	var errs []string
	trimmed := strings.TrimSpace(raw)
	if f.Required && trimmed == "" {
		errs = append(errs, MsgRequired)
	}
	if trimmed == "" {
		return errs
	}
	switch f.Type {
	case Email:
		if !emailPattern.MatchString(trimmed) {
			errs = append(errs, MsgInvalidEmail)
		}
	case Choice:
		if !contains(f.Choices, trimmed) {
			errs = append(errs, MsgInvalidChoice)
		}
	}
	return errs
}

func contains(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}
