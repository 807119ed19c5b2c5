package telinput

import (
	"errors"
	"fmt"
	"strings"

	"phone_input_backend/internal/countries"
	"phone_input_backend/platform/sanitize"
)

// ErrInvalidCountryCode is returned when a country code does not resolve
// against the active country list.
var ErrInvalidCountryCode = errors.New("invalid country code")

// Config describes one input field: its initial content and which countries
// it offers.
type Config struct {
	DefaultCountry      string             `json:"defaultCountry,omitempty"`
	DefaultValue        string             `json:"defaultValue,omitempty"`
	ExcludedCountries   []string           `json:"excludedCountries,omitempty"`
	ExcludedTerritories []string           `json:"excludedTerritories,omitempty"`
	ExcludedRegions     []countries.Region `json:"excludedRegions,omitempty"`
	ExcludedSubregions  []countries.Region `json:"excludedSubregions,omitempty"`
	IncludeTerritories  bool               `json:"includeTerritories,omitempty"`

	// Base replaces the built-in country table.
	Base []countries.Country `json:"-"`
}

// ListOptions returns the country view selected by the config.
func (c Config) ListOptions() countries.ListOptions {
	return countries.ListOptions{
		Base:                c.Base,
		IncludeTerritories:  c.IncludeTerritories,
		ExcludedCountries:   c.ExcludedCountries,
		ExcludedTerritories: c.ExcludedTerritories,
		ExcludedRegions:     c.ExcludedRegions,
		ExcludedSubregions:  c.ExcludedSubregions,
	}
}

// State is the mutable part of an Input, suitable for persistence.
type State struct {
	Input            string `json:"input"`
	PreferredCountry string `json:"preferredCountry,omitempty"`
}

// Input holds the state of a single phone number field. Detection, selection
// and formatting are recomputed on every read.
//
// An Input is not safe for concurrent mutation.
type Input struct {
	list      []countries.Country
	input     string
	preferred *countries.Country
}

// New creates an Input from cfg. A DefaultCountry seeds the input with its
// dial code and a DefaultValue replaces the seeded input.
//
// A DefaultCountry is also kept as the preferred country, so it is selected
// over the country detected from the seeded input: DefaultCountry "ca"
// selects "ca" even though "+1" alone detects "us". Call ClearCountry to
// fall back to detection.
func New(cfg Config) (*Input, error) {
	in := &Input{list: countries.List(cfg.ListOptions())}

	if cfg.DefaultCountry != "" {
		c := countries.Find(in.list, cfg.DefaultCountry)
		if c == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCountryCode, cfg.DefaultCountry)
		}
		in.input = c.DialCode
		in.preferred = c
	}

	if cfg.DefaultValue != "" {
		in.input = sanitize.Digits(cfg.DefaultValue)
	}

	return in, nil
}

// Restore rebuilds an Input from cfg and a saved state. A preferred country
// that is no longer offered is dropped.
func Restore(cfg Config, st State) *Input {
	in := &Input{
		list:  countries.List(cfg.ListOptions()),
		input: sanitize.Digits(st.Input),
	}
	if st.PreferredCountry != "" {
		in.preferred = countries.Find(in.list, st.PreferredCountry)
	}
	return in
}

// State returns a snapshot of the mutable state.
func (in *Input) State() State {
	st := State{Input: in.input}
	if in.preferred != nil {
		st.PreferredCountry = in.preferred.Code
	}
	return st
}

// Value returns the formatted number.
func (in *Input) Value() string {
	return Format(in.input, in.selected())
}

// SetValue replaces the input with the digits of raw.
func (in *Input) SetValue(raw string) {
	in.input = sanitize.Digits(raw)
}

// Digits returns the sanitized input as typed.
func (in *Input) Digits() string {
	return in.input
}

// RawValue returns the digits of the formatted number. Digits the mask
// could not place are not included.
func (in *Input) RawValue() string {
	return sanitize.Digits(in.Value())
}

// Country returns the code of the selected country, or "" when none.
func (in *Input) Country() string {
	if c := in.selected(); c != nil {
		return c.Code
	}
	return ""
}

// CountryData returns the selected country record, or nil.
func (in *Input) CountryData() *countries.Country {
	return in.selected()
}

// Detected returns the country detected from the input alone, or nil.
func (in *Input) Detected() *countries.Country {
	return Detect(in.input, in.list)
}

// Preferred returns the explicitly chosen country, or nil.
func (in *Input) Preferred() *countries.Country {
	return in.preferred
}

// SetCountry makes code the preferred country. When a country is detected
// in the current input its dial code is swapped for the new one.
func (in *Input) SetCountry(code string) error {
	c := countries.Find(in.list, code)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	in.preferred = c

	if detected := in.Detected(); detected != nil && in.input != "" {
		in.input = strings.Replace(in.input, detected.DialCode, c.DialCode, 1)
	}
	return nil
}

// ClearCountry drops the preferred country; detection takes over.
func (in *Input) ClearCountry() {
	in.preferred = nil
}

// Countries returns the countries offered by this input.
func (in *Input) Countries() []countries.Country {
	out := make([]countries.Country, len(in.list))
	copy(out, in.list)
	return out
}

func (in *Input) selected() *countries.Country {
	return PickCountry(in.input, in.Detected(), in.preferred, in.list)
}
