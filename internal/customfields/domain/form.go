package domain

// FormTab is one tab of a rendered form structure with its fields in display
// order.
type FormTab struct {
	Tab    FieldTab
	Fields []FieldDefinition
}

// FormStructure is the read-side shape of a custom form: ordered tabs plus
// the fields that belong to no tab.
type FormStructure struct {
	EntityType EntityType
	EntityID   string
	Tabs       []FormTab
	FlatFields []FieldDefinition
}

// IsEmpty reports whether the scope has no custom form configured.
func (s FormStructure) IsEmpty() bool {
	return len(s.Tabs) == 0 && len(s.FlatFields) == 0
}

// SubmittedValue pairs a field definition with its stored answer for one
// entity instance. HasValue distinguishes "submitted empty" from "never
// submitted".
type SubmittedValue struct {
	Field    FieldDefinition
	Value    string
	HasValue bool
}

// SubmittedTab is one tab of the submitted-values view.
type SubmittedTab struct {
	Tab    FieldTab
	Values []SubmittedValue
}

// SubmittedForm is the submitted-values view for one entity instance, grouped
// the same way as FormStructure.
type SubmittedForm struct {
	EntityType       EntityType
	EntityID         string
	EntityInstanceID string
	Tabs             []SubmittedTab
	FlatValues       []SubmittedValue
}
