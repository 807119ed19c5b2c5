// Package sessions provides the server-side phone input session module.
package sessions

import (
	"context"
	"fmt"

	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/events"
	apphttp "phone_input_backend/internal/http"
	"phone_input_backend/internal/sessions/handler"
	"phone_input_backend/internal/sessions/repository"
	"phone_input_backend/internal/sessions/service"
	"phone_input_backend/platform/config"
	"phone_input_backend/platform/logger"
	"phone_input_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the session module. base replaces the built-in country
// table when non-nil.
func NewModule(store repository.Store, eventBus events.Bus, cfg config.SessionConfig, base []countries.Country, val *validator.Validator, log *logger.Logger) (*Module, error) {
	if err := countries.RegisterValidations(val); err != nil {
		return nil, fmt.Errorf("register region validation: %w", err)
	}

	if eventBus != nil && log != nil {
		subscribeAuditLog(eventBus, log)
	}

	svc := service.New(store, eventBus, cfg, base, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}, nil
}

func (m *Module) Name() string {
	return "sessions"
}

func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1, ctx.SessionAuth)
}

func subscribeAuditLog(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(events.SessionCreatedName, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.SessionCreated)
		if !ok {
			return nil
		}
		log.WithContext(ctx).SessionEvent("created", ev.SessionID.String(), ev.Country)
		return nil
	}))
	bus.Subscribe(events.SessionCountryChangedName, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.SessionCountryChanged)
		if !ok {
			return nil
		}
		log.WithContext(ctx).SessionEvent("country_changed", ev.SessionID.String(), ev.Country)
		return nil
	}))
	bus.Subscribe(events.SessionDeletedName, events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.SessionDeleted)
		if !ok {
			return nil
		}
		log.WithContext(ctx).SessionEvent("deleted", ev.SessionID.String(), "")
		return nil
	}))
}

var _ apphttp.Module = (*Module)(nil)
