package transport

import (
	"time"

	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/telinput"
)

type CreateSessionRequest struct {
	DefaultCountry      string             `json:"defaultCountry" validate:"omitempty,countrycode"`
	DefaultValue        string             `json:"defaultValue" validate:"max=64"`
	ExcludedCountries   []string           `json:"excludedCountries" validate:"omitempty,max=300,dive,countrycode"`
	ExcludedTerritories []string           `json:"excludedTerritories" validate:"omitempty,max=300,dive,countrycode"`
	ExcludedRegions     []countries.Region `json:"excludedRegions" validate:"omitempty,dive,region"`
	ExcludedSubregions  []countries.Region `json:"excludedSubregions" validate:"omitempty,dive,region"`
	IncludeTerritories  bool               `json:"includeTerritories"`
}

// Config converts the request into an input config.
func (r CreateSessionRequest) Config() telinput.Config {
	return telinput.Config{
		DefaultCountry:      r.DefaultCountry,
		DefaultValue:        r.DefaultValue,
		ExcludedCountries:   r.ExcludedCountries,
		ExcludedTerritories: r.ExcludedTerritories,
		ExcludedRegions:     r.ExcludedRegions,
		ExcludedSubregions:  r.ExcludedSubregions,
		IncludeTerritories:  r.IncludeTerritories,
	}
}

type SetValueRequest struct {
	Value string `json:"value" validate:"max=64"`
}

type SetCountryRequest struct {
	Country string `json:"country" validate:"required,countrycode"`
}

// SessionView is the rendered state of an input session.
type SessionView struct {
	ID          string             `json:"id"`
	Value       string             `json:"value"`
	RawValue    string             `json:"rawValue"`
	Digits      string             `json:"digits"`
	Country     string             `json:"country"`
	Detected    string             `json:"detected"`
	Preferred   string             `json:"preferred"`
	CountryData *countries.Country `json:"countryData,omitempty"`
	ExpiresAt   time.Time          `json:"expiresAt"`
}

type CreateSessionResponse struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	State     SessionView `json:"state"`
}

// ListCountriesResponse uses the same envelope as GET /phone/countries.
type ListCountriesResponse struct {
	Items []countries.Country `json:"items"`
	Total int                 `json:"total"`
}
