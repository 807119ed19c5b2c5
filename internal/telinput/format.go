package telinput

import (
	"strings"

	"phone_input_backend/internal/countries"
	"phone_input_backend/platform/sanitize"
)

// maxNumberLength is the E.164 limit on the length of an international
// number, counting the leading "+".
const maxNumberLength = 15

// Format renders num for display in c's convention.
//
// The result always starts with "+". Without a country num is passed through
// as is. With a country the digits after its dial code are laid into the
// country's mask, or into an ungrouped mask sized to the E.164 budget. One
// space separates the dial code from the rest. Digits the mask cannot place
// are dropped, so the output says nothing about validity.
//
// Appending a digit to num only ever appends to the output.
func Format(num string, c *countries.Country) string {
	if num == "" {
		return "+"
	}
	if c == nil {
		return "+" + num
	}

	mask := c.Format
	if mask == "" {
		mask = strings.Repeat("0", max(0, maxNumberLength-1-len(c.DialCode)))
	}

	digits := sanitize.Digits(num)

	var b strings.Builder
	b.Grow(1 + len(c.DialCode) + 1 + len(mask))
	b.WriteByte('+')
	b.WriteString(c.DialCode)

	// mi starts at -1 for the space between dial code and number; it is only
	// written once a digit follows the dial code.
	for ni, mi := len(c.DialCode), -1; ni < len(digits) && mi < len(mask); mi++ {
		switch {
		case mi < 0:
			b.WriteByte(' ')
		case mask[mi] == '0':
			b.WriteByte(digits[ni])
			ni++
		default:
			b.WriteByte(mask[mi])
		}
	}

	return b.String()
}
