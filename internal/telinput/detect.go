// Package telinput implements incremental phone number input: country
// detection from a typed digit stream, reconciliation with a user-preferred
// country, and type-ahead-safe masked formatting.
//
// Detect, MatchesCountry, PickCountry and Format are pure and safe for
// concurrent use. Input wraps them with the per-user state of one input field.
package telinput

import (
	"cmp"
	"slices"
	"strings"

	"phone_input_backend/internal/countries"
)

// Detect returns the country that best explains num, or nil when no dial
// code is a prefix of num.
//
// Candidates are ordered by dial code length (longest first) and then by
// priority (lowest first), both stable. The first candidate whose dial code
// followed by one of its area codes prefixes num wins; otherwise the first
// candidate is returned unverified.
func Detect(num string, list []countries.Country) *countries.Country {
	if num == "" {
		return nil
	}

	var candidates []*countries.Country
	for i := range list {
		if list[i].DialCode != "" && strings.HasPrefix(num, list[i].DialCode) {
			candidates = append(candidates, &list[i])
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	slices.SortStableFunc(candidates, func(a, b *countries.Country) int {
		return len(b.DialCode) - len(a.DialCode)
	})
	slices.SortStableFunc(candidates, func(a, b *countries.Country) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	for _, c := range candidates {
		for _, areaCode := range c.AreaCodes {
			if strings.HasPrefix(num, c.DialCode+areaCode) {
				return c
			}
		}
	}

	return candidates[0]
}

// MatchesCountry reports whether num is consistent with c: it must start
// with c's dial code and, when c declares area codes, the digits typed after
// the dial code must agree with at least one area code over their common
// length. A partially typed area code therefore matches.
func MatchesCountry(num string, c *countries.Country) bool {
	if c == nil || c.DialCode == "" || !strings.HasPrefix(num, c.DialCode) {
		return false
	}
	if !c.HasAreaCodes() {
		return true
	}

	rest := num[len(c.DialCode):]
	for _, areaCode := range c.AreaCodes {
		n := min(len(rest), len(areaCode))
		if rest[:n] == areaCode[:n] {
			return true
		}
	}
	return false
}

// PickCountry chooses the country that governs formatting. A preferred
// country wins while it is still present in list and consistent with num;
// otherwise the detected country is used.
func PickCountry(num string, detected, preferred *countries.Country, list []countries.Country) *countries.Country {
	if preferred == nil {
		return detected
	}

	c := countries.Find(list, preferred.Code)
	if c == nil {
		return detected
	}
	if MatchesCountry(num, c) {
		return c
	}
	return detected
}
