package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"memberhub-server/internal/infra/utils"

	"github.com/thoas/go-funk"
)

const (
	ReasonRequired      = "required"
	ReasonInvalidOption = "invalid option"

	_dateLayout     = "2006-01-02"
	_dateTimeLayout = "2006-01-02 15:04:05"
)

// ValidationResult is the outcome of checking one submission against a field
// catalog. Errors are keyed by field definition id.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// ValidateFieldValue checks one submitted value against its definition and
// returns a rejection reason, or the empty string when the value is accepted.
// hasValue is false when the caller omitted the field entirely.
func ValidateFieldValue(field FieldDefinition, value string, hasValue bool) string {
	trimmed := strings.TrimSpace(value)

	if !hasValue || trimmed == "" {
		if field.IsRequired {
			return ReasonRequired
		}
		return ""
	}

	switch field.FieldType {
	case FieldTypeText, FieldTypeLongText, FieldTypePhoneNumber:
		return ""
	case FieldTypeEmail:
		if !utils.IsValidEmail(trimmed) {
			return "must be a valid email address"
		}
	case FieldTypeURL:
		if !isValidURL(trimmed) {
			return "must be a valid URL"
		}
	case FieldTypeInteger:
		if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
			return "must be a whole number"
		}
	// Year of birth is numeric only; range policy is left to whoever defines
	// the field.
	case FieldTypeDecimal, FieldTypeYearOfBirth:
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return "must be a number"
		}
	case FieldTypeBoolean:
		if !strings.EqualFold(trimmed, "true") && !strings.EqualFold(trimmed, "false") {
			return "must be true or false"
		}
	case FieldTypeDate:
		if _, err := time.Parse(_dateLayout, trimmed); err != nil {
			return "must be a date in format 2006-01-02"
		}
	case FieldTypeDateTime:
		if !isValidDateTime(trimmed) {
			return "must be a date/time in format 2006-01-02 15:04:05"
		}
	case FieldTypeDropdown:
		if !funk.ContainsString(field.Options(), trimmed) {
			return ReasonInvalidOption
		}
	case FieldTypeMultipleChoice:
		return validateSelections(field, value)
	}

	return ""
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// isValidDateTime also accepts a bare date, matching how submissions arrive
// from date pickers without a time component.
func isValidDateTime(value string) bool {
	if _, err := time.Parse(_dateTimeLayout, value); err == nil {
		return true
	}
	_, err := time.Parse(_dateLayout, value)
	return err == nil
}

// validateSelections checks every entry of a delimited multi-select answer
// against the field's option list.
func validateSelections(field FieldDefinition, value string) string {
	options := field.Options()
	for _, part := range strings.Split(value, ",") {
		selection := strings.TrimSpace(part)
		if selection == "" {
			continue
		}
		if !funk.ContainsString(options, selection) {
			return ReasonInvalidOption
		}
	}
	return ""
}
