package countries

import (
	"phone_input_backend/platform/validator"

	govalidator "github.com/go-playground/validator/v10"
)

// RegisterValidations adds the "region" tag, which accepts known region and
// subregion names, to val.
func RegisterValidations(val *validator.Validator) error {
	return val.RegisterValidation("region", func(fl govalidator.FieldLevel) bool {
		return Region(fl.Field().String()).Known()
	})
}
