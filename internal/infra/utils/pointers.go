package utils

// StringPtr returns a pointer to the string, or nil when it is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
