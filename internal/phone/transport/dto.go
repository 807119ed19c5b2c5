package transport

import "phone_input_backend/internal/countries"

// CountryFilter selects the offered countries.
type CountryFilter struct {
	IncludeTerritories  bool               `json:"includeTerritories" form:"includeTerritories"`
	ExcludedCountries   []string           `json:"excludedCountries" form:"excludeCountries" validate:"omitempty,max=300,dive,countrycode"`
	ExcludedTerritories []string           `json:"excludedTerritories" form:"excludeTerritories" validate:"omitempty,max=300,dive,countrycode"`
	ExcludedRegions     []countries.Region `json:"excludedRegions" form:"excludeRegions" validate:"omitempty,dive,region"`
	ExcludedSubregions  []countries.Region `json:"excludedSubregions" form:"excludeSubregions" validate:"omitempty,dive,region"`
}

// ListOptions converts the filter into country list options over base.
func (f CountryFilter) ListOptions(base []countries.Country) countries.ListOptions {
	return countries.ListOptions{
		Base:                base,
		IncludeTerritories:  f.IncludeTerritories,
		ExcludedCountries:   f.ExcludedCountries,
		ExcludedTerritories: f.ExcludedTerritories,
		ExcludedRegions:     f.ExcludedRegions,
		ExcludedSubregions:  f.ExcludedSubregions,
	}
}

type FormatRequest struct {
	CountryFilter
	Value string `json:"value" validate:"max=64"`
	// Country forces the formatting country and skips detection.
	Country          string `json:"country" validate:"omitempty,countrycode"`
	PreferredCountry string `json:"preferredCountry" validate:"omitempty,countrycode"`
}

type FormatResponse struct {
	Value           string             `json:"value"`
	RawValue        string             `json:"rawValue"`
	Country         string             `json:"country"`
	DetectedCountry string             `json:"detectedCountry"`
	CountryData     *countries.Country `json:"countryData,omitempty"`
}

type ListCountriesRequest struct {
	CountryFilter
}

type ListCountriesResponse struct {
	Items []countries.Country `json:"items"`
	Total int                 `json:"total"`
}
