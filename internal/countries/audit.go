package countries

import (
	"fmt"
	"strings"

	"phone_input_backend/platform/phone"
)

// Severity grades an audit finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single problem found by Audit.
type Finding struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Audit checks a reference table against its structural invariants and
// against the calling codes known to libphonenumber's region metadata.
// Regions unknown to libphonenumber are reported as warnings.
func Audit(list []Country) []Finding {
	var findings []Finding

	if err := Validate(list); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			findings = append(findings, Finding{Severity: SeverityError, Message: line})
		}
	}

	for _, c := range list {
		calling := phone.CallingCode(c.Code)
		if calling == "" {
			findings = append(findings, Finding{
				Code:     c.Code,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("region %s is unknown to libphonenumber", strings.ToUpper(c.Code)),
			})
			continue
		}

		if !strings.HasPrefix(c.DialCode, calling) {
			findings = append(findings, Finding{
				Code:     c.Code,
				Severity: SeverityError,
				Message:  fmt.Sprintf("dial code %s does not extend calling code %s", c.DialCode, calling),
			})
		}
	}

	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
