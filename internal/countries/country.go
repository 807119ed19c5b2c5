// Package countries holds the country dialing reference data used for phone
// number input: the built-in country and territory tables, derived views over
// them, and loaders for externally supplied tables.
//
// Records are shared between views and must be treated as read-only.
package countries

import (
	"slices"
	"strings"
)

// Region tags a country with a top-level region or a finer subregion.
type Region string

// Top-level regions. The first entry of Country.Regions is always one of these.
const (
	Africa  Region = "africa"
	America Region = "america"
	Asia    Region = "asia"
	Europe  Region = "europe"
	Oceania Region = "oceania"
)

// Subregions refine a top-level region.
const (
	NorthAmerica   Region = "north-america"
	SouthAmerica   Region = "south-america"
	CentralAmerica Region = "central-america"
	Caribbean      Region = "carribean"
	EU             Region = "eu"
	ExUSSR         Region = "ex-ussr"
	ExYugoslavia   Region = "ex-yugos"
	Baltic         Region = "baltic"
	MiddleEast     Region = "middle-east"
	NorthAfrica    Region = "north-africa"
)

var (
	topLevelRegions = []Region{Africa, America, Asia, Europe, Oceania}
	subregions      = []Region{NorthAmerica, SouthAmerica, CentralAmerica, Caribbean, EU, ExUSSR, ExYugoslavia, Baltic, MiddleEast, NorthAfrica}
)

// IsTopLevel reports whether r is a top-level region.
func (r Region) IsTopLevel() bool {
	return slices.Contains(topLevelRegions, r)
}

// IsSubregion reports whether r is a known subregion.
func (r Region) IsSubregion() bool {
	return slices.Contains(subregions, r)
}

// Known reports whether r is a known region or subregion tag.
func (r Region) Known() bool {
	return r.IsTopLevel() || r.IsSubregion()
}

// Regions returns all top-level regions.
func Regions() []Region { return slices.Clone(topLevelRegions) }

// Subregions returns all subregion tags.
func Subregions() []Region { return slices.Clone(subregions) }

// Country is a single dialing reference record.
type Country struct {
	Name    string   `json:"name" yaml:"name"`
	Regions []Region `json:"regions" yaml:"regions"`
	// Code is the lowercase two-letter identifier, unique within a list.
	Code string `json:"code" yaml:"code"`
	// DialCode is the international calling prefix without the leading "+".
	DialCode string `json:"dialCode" yaml:"dialCode"`
	// Format is a mask where '0' takes the next digit and any other
	// character is copied literally. Empty means ungrouped digits.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Priority breaks ties between countries sharing a dial code; lower wins.
	Priority int `json:"priority,omitempty" yaml:"priority,omitempty"`
	// AreaCodes, when present, are the only prefixes allowed right after
	// DialCode for numbers belonging to this country.
	AreaCodes []string `json:"areaCodes,omitempty" yaml:"areaCodes,omitempty"`
}

// HasAreaCodes reports whether the country declares any area codes.
func (c Country) HasAreaCodes() bool {
	return len(c.AreaCodes) > 0
}

// InRegion reports whether any of the country's region tags equals r.
func (c Country) InRegion(r Region) bool {
	return slices.Contains(c.Regions, r)
}

// Countries returns a new slice over the built-in country table.
func Countries() []Country {
	return slices.Clone(baseCountries)
}

// Territories returns a new slice over the built-in territory table.
func Territories() []Country {
	return slices.Clone(baseTerritories)
}

// Find returns the record in list whose code matches code case-insensitively.
// The returned pointer addresses the element of list.
func Find(list []Country, code string) *Country {
	code = NormalizeCode(code)
	if code == "" {
		return nil
	}
	for i := range list {
		if list[i].Code == code {
			return &list[i]
		}
	}
	return nil
}

// NormalizeCode returns the canonical lowercase form of a country code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
