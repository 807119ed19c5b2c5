package countries

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListOptions selects a view over the reference tables.
type ListOptions struct {
	// Base replaces the built-in country table when non-nil.
	Base []Country
	// IncludeTerritories merges the territory table into the view and sorts
	// the result by name.
	IncludeTerritories bool
	ExcludedCountries   []string
	ExcludedTerritories []string
	ExcludedRegions     []Region
	ExcludedSubregions  []Region
}

// List builds the view described by opts. The base tables are never modified;
// the returned slice is freshly allocated.
func List(opts ListOptions) []Country {
	var list []Country
	if opts.Base != nil {
		list = slices.Clone(opts.Base)
	} else {
		list = Countries()
	}

	if opts.IncludeTerritories {
		list = mergeTerritories(list, baseTerritories)
	}

	if len(opts.ExcludedCountries) > 0 {
		list = excludeCodes(list, opts.ExcludedCountries)
	}
	if len(opts.ExcludedTerritories) > 0 {
		list = excludeCodes(list, opts.ExcludedTerritories)
	}
	if len(opts.ExcludedRegions) > 0 {
		list = excludeRegions(list, opts.ExcludedRegions)
	}
	if len(opts.ExcludedSubregions) > 0 {
		list = excludeRegions(list, opts.ExcludedSubregions)
	}

	return list
}

// mergeTerritories appends territories whose code is not already present and
// sorts the result by name.
func mergeTerritories(list, territories []Country) []Country {
	seen := make(map[string]struct{}, len(list)+len(territories))
	for _, c := range list {
		seen[c.Code] = struct{}{}
	}
	for _, t := range territories {
		if _, ok := seen[t.Code]; ok {
			continue
		}
		seen[t.Code] = struct{}{}
		list = append(list, t)
	}

	col := collate.New(language.English)
	slices.SortStableFunc(list, func(a, b Country) int {
		return col.CompareString(a.Name, b.Name)
	})
	return list
}

func excludeCodes(list []Country, codes []string) []Country {
	excluded := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		excluded[NormalizeCode(code)] = struct{}{}
	}
	return slices.DeleteFunc(list, func(c Country) bool {
		_, ok := excluded[c.Code]
		return ok
	})
}

func excludeRegions(list []Country, regions []Region) []Country {
	return slices.DeleteFunc(list, func(c Country) bool {
		for _, r := range regions {
			if c.InRegion(r) {
				return true
			}
		}
		return false
	})
}
