// Package phone exposes the libphonenumber region metadata used to check
// country reference data.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// CallingCode returns the international calling code libphonenumber
// assigns to region (ISO 3166-1 alpha-2, any case), or "" when the region
// is unknown.
func CallingCode(region string) string {
	cc := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(strings.TrimSpace(region)))
	if cc == 0 {
		return ""
	}
	return strconv.Itoa(cc)
}
