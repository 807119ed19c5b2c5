// Package events defines the domain events published by input sessions.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"phone_input_backend/platform/events"

	"github.com/google/uuid"
)

type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

var NewBaseEvent = events.NewBaseEvent

// Event names.
const (
	SessionCreatedName        = "sessions.session.created"
	SessionCountryChangedName = "sessions.session.country_changed"
	SessionDeletedName        = "sessions.session.deleted"
)

// SessionCreated is published when a new input session is started.
type SessionCreated struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
	Country   string    `json:"country"`
}

func (e SessionCreated) EventName() string { return SessionCreatedName }

// SessionCountryChanged is published when the preferred country of a
// session is set or cleared. Previous and Country are the preferred country
// before and after the change, empty when none was set.
type SessionCountryChanged struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
	Previous  string    `json:"previous"`
	Country   string    `json:"country"`
}

func (e SessionCountryChanged) EventName() string { return SessionCountryChangedName }

// SessionDeleted is published when a session is removed.
type SessionDeleted struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
}

func (e SessionDeleted) EventName() string { return SessionDeletedName }
