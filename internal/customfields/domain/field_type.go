package domain

import "fmt"

// FieldType is the input kind of a field definition. The value doubles as the
// wire representation on the HTTP API and Kafka topics.
type FieldType string

const (
	FieldTypeText           FieldType = "text"
	FieldTypeLongText       FieldType = "long_text"
	FieldTypeEmail          FieldType = "email"
	FieldTypeURL            FieldType = "url"
	FieldTypeInteger        FieldType = "integer"
	FieldTypeDecimal        FieldType = "decimal"
	FieldTypeYearOfBirth    FieldType = "year_of_birth"
	FieldTypeBoolean        FieldType = "boolean"
	FieldTypeDate           FieldType = "date"
	FieldTypeDateTime       FieldType = "date_time"
	FieldTypePhoneNumber    FieldType = "phone_number"
	FieldTypeDropdown       FieldType = "dropdown"
	FieldTypeMultipleChoice FieldType = "multiple_choice"
)

var allFieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeLongText,
	FieldTypeEmail,
	FieldTypeURL,
	FieldTypeInteger,
	FieldTypeDecimal,
	FieldTypeYearOfBirth,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeDateTime,
	FieldTypePhoneNumber,
	FieldTypeDropdown,
	FieldTypeMultipleChoice,
}

func ParseFieldType(value string) (FieldType, error) {
	for _, fieldType := range allFieldTypes {
		if string(fieldType) == value {
			return fieldType, nil
		}
	}
	return "", fmt.Errorf("unknown field type: %s", value)
}

func (ft FieldType) String() string {
	return string(ft)
}

// RequiresOptions reports whether definitions of this type must carry a
// non-empty option list.
func (ft FieldType) RequiresOptions() bool {
	return ft == FieldTypeDropdown || ft == FieldTypeMultipleChoice
}
