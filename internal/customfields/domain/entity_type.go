package domain

import "fmt"

// EntityType identifies which kind of record a custom form is attached to.
type EntityType string

const (
	EntityTypeGroupMembership   EntityType = "GroupMembership"
	EntityTypeEventRegistration EntityType = "EventRegistration"
)

var allEntityTypes = []EntityType{
	EntityTypeGroupMembership,
	EntityTypeEventRegistration,
}

func ParseEntityType(value string) (EntityType, error) {
	for _, entityType := range allEntityTypes {
		if string(entityType) == value {
			return entityType, nil
		}
	}
	return "", fmt.Errorf("unknown entity type: %s", value)
}

func (et EntityType) String() string {
	return string(et)
}
