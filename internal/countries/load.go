package countries

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk layout of an external reference table.
type tableFile struct {
	Countries []Country `yaml:"countries"`
}

// LoadYAML decodes a country table from r and validates it.
func LoadYAML(r io.Reader) ([]Country, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode country table: %w", err)
	}

	for i := range file.Countries {
		file.Countries[i].Code = NormalizeCode(file.Countries[i].Code)
	}

	if err := Validate(file.Countries); err != nil {
		return nil, err
	}
	return file.Countries, nil
}

// LoadFile reads a YAML country table from path.
func LoadFile(path string) ([]Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open country table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return LoadYAML(f)
}

// Validate checks the structural invariants of a reference table: unique
// codes, digit-only dial and area codes, and a top-level first region.
// All violations are reported together.
func Validate(list []Country) error {
	if len(list) == 0 {
		return errors.New("country table is empty")
	}

	var errs []error
	seen := make(map[string]struct{}, len(list))
	for i, c := range list {
		where := fmt.Sprintf("entry %d (%s)", i, c.Code)
		if c.Code == "" {
			errs = append(errs, fmt.Errorf("%s: code is required", where))
		} else if _, dup := seen[c.Code]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate code", where))
		}
		seen[c.Code] = struct{}{}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if !isDigits(c.DialCode) {
			errs = append(errs, fmt.Errorf("%s: dial code %q is not a digit string", where, c.DialCode))
		}
		for _, ac := range c.AreaCodes {
			if !isDigits(ac) {
				errs = append(errs, fmt.Errorf("%s: area code %q is not a digit string", where, ac))
			}
		}
		if c.Priority < 0 {
			errs = append(errs, fmt.Errorf("%s: priority must not be negative", where))
		}
		if len(c.Regions) == 0 || !c.Regions[0].IsTopLevel() {
			errs = append(errs, fmt.Errorf("%s: first region must be a top-level region", where))
		}
		for _, r := range c.Regions {
			if !r.Known() {
				errs = append(errs, fmt.Errorf("%s: unknown region %q", where, r))
			}
		}
	}

	return errors.Join(errs...)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
