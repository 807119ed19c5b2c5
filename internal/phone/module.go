// Package phone provides the stateless phone formatting module.
package phone

import (
	"fmt"

	"phone_input_backend/internal/countries"
	apphttp "phone_input_backend/internal/http"
	"phone_input_backend/internal/phone/handler"
	"phone_input_backend/internal/phone/service"
	"phone_input_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

// NewModule wires the phone module. base replaces the built-in country
// table when non-nil.
func NewModule(base []countries.Country, val *validator.Validator) (*Module, error) {
	if err := countries.RegisterValidations(val); err != nil {
		return nil, fmt.Errorf("register region validation: %w", err)
	}
	return &Module{handler: handler.New(service.New(base), val)}, nil
}

func (m *Module) Name() string {
	return "phone"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/phone"))
}

var _ apphttp.Module = (*Module)(nil)
