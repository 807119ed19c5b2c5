package service

import (
	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/phone/transport"
	"phone_input_backend/internal/telinput"
	"phone_input_backend/platform/apperr"
	"phone_input_backend/platform/sanitize"
)

const invalidCountryCode = "invalid country code"

// Service runs the stateless detect, pick and format pipeline.
type Service struct {
	base []countries.Country
}

// New creates the phone service. base replaces the built-in country table
// when non-nil.
func New(base []countries.Country) *Service {
	return &Service{base: base}
}

func (s *Service) Format(req transport.FormatRequest) (transport.FormatResponse, error) {
	list := countries.List(req.ListOptions(s.base))
	digits := sanitize.Digits(req.Value)
	detected := telinput.Detect(digits, list)

	var selected *countries.Country
	switch {
	case req.Country != "":
		selected = countries.Find(list, req.Country)
		if selected == nil {
			return transport.FormatResponse{}, apperr.Validation(invalidCountryCode).WithDetails(req.Country)
		}
	case req.PreferredCountry != "":
		preferred := countries.Find(list, req.PreferredCountry)
		if preferred == nil {
			return transport.FormatResponse{}, apperr.Validation(invalidCountryCode).WithDetails(req.PreferredCountry)
		}
		selected = telinput.PickCountry(digits, detected, preferred, list)
	default:
		selected = detected
	}

	value := telinput.Format(digits, selected)
	resp := transport.FormatResponse{
		Value:       value,
		RawValue:    sanitize.Digits(value),
		CountryData: selected,
	}
	if selected != nil {
		resp.Country = selected.Code
	}
	if detected != nil {
		resp.DetectedCountry = detected.Code
	}
	return resp, nil
}

func (s *Service) ListCountries(req transport.ListCountriesRequest) transport.ListCountriesResponse {
	list := countries.List(req.ListOptions(s.base))
	return transport.ListCountriesResponse{Items: list, Total: len(list)}
}
