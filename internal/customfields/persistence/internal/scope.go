package internal

import "time"

// Minimal projections of the upstream membership tables, used only for
// existence checks. The full rows are owned by other services.

type Group struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Group) TableName() string {
	return "groups"
}

type Event struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// GroupApplication is one member's application to join a group.
type GroupApplication struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	GroupID   string    `json:"group_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (GroupApplication) TableName() string {
	return "group_applications"
}

// EventRegistration is one member's registration for an event.
type EventRegistration struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	EventID   string    `json:"event_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}
