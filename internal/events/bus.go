// Package events re-exports the platform event bus so domain modules can
// depend on internal/events alone.
package events

import (
	platformevents "phone_input_backend/platform/events"
	"phone_input_backend/platform/logger"
)

// InMemoryBus is the platform in-memory bus.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
