package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown to users.
var FieldLabels = map[string]string{
	"FirstName":    "First Name",
	"LastName":     "Last Name",
	"Department":   "Department",
	"Availability": "Availability",
	"Bio":          "Bio",
	"Title":        "Title",
	"Company":      "Company",
	"Skills":       "Skills",
	"MentorID":     "Mentor",
	"Subject":      "Subject",
	"SessionType":  "Session Type",
	"Message":      "Message",
	"Date":         "Preferred Date",
	"TimeSlot":     "Preferred Time",
}

// FormatValidationErrors turns validator errors into user-facing messages,
// one per offending field.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(e.Param()), ", "))
	case "department":
		return fmt.Sprintf("%s is not a known department", label)
	case "availability":
		return fmt.Sprintf("%s is not a known availability option", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase inserts spaces before interior capitals: "SessionType"
// becomes "Session Type".
func formatCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
