package telinput

import (
	"errors"
	"testing"

	"phone_input_backend/internal/countries"
)

func TestNewEmpty(t *testing.T) {
	in, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Value() != "+" {
		t.Fatalf("expected +, got %q", in.Value())
	}
	if in.Country() != "" || in.CountryData() != nil {
		t.Fatalf("expected no country, got %q", in.Country())
	}
}

func TestNewDefaultCountryBecomesPreferred(t *testing.T) {
	in, err := New(Config{DefaultCountry: "CA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Digits() != "1" {
		t.Fatalf("expected dial code as input, got %q", in.Digits())
	}
	if in.Country() != "ca" {
		t.Fatalf("expected ca, got %q", in.Country())
	}
	if code(in.Detected()) != "us" {
		t.Fatalf("expected us to be detected, got %s", code(in.Detected()))
	}
	if in.Value() != "+1" {
		t.Fatalf("expected +1, got %q", in.Value())
	}
	if st := in.State(); st.PreferredCountry != "ca" {
		t.Fatalf("expected ca to be saved as preferred, got %+v", st)
	}

	in.ClearCountry()
	if in.Country() != "us" {
		t.Fatalf("expected detection after clearing, got %q", in.Country())
	}
}

func TestNewRejectsUnknownDefaultCountry(t *testing.T) {
	if _, err := New(Config{DefaultCountry: "zz"}); !errors.Is(err, ErrInvalidCountryCode) {
		t.Fatalf("expected ErrInvalidCountryCode, got %v", err)
	}
	_, err := New(Config{DefaultCountry: "us", ExcludedCountries: []string{"US"}})
	if !errors.Is(err, ErrInvalidCountryCode) {
		t.Fatalf("expected excluded default to be rejected, got %v", err)
	}
}

func TestNewDefaultValueOverridesDefaultCountry(t *testing.T) {
	in, err := New(Config{DefaultCountry: "gb", DefaultValue: "+1 (416) 555-1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Digits() != "14165551234" {
		t.Fatalf("unexpected digits %q", in.Digits())
	}
	if in.Country() != "ca" {
		t.Fatalf("expected ca, got %q", in.Country())
	}
	if in.Value() != "+1 (416) 555-1234" {
		t.Fatalf("unexpected value %q", in.Value())
	}
}

func TestSetValue(t *testing.T) {
	in, _ := New(Config{})
	in.SetValue("44 1234 567890")

	if in.Country() != "gb" {
		t.Fatalf("expected gb, got %q", in.Country())
	}
	if in.Value() != "+44 1234 567890" {
		t.Fatalf("unexpected value %q", in.Value())
	}
	if in.RawValue() != "441234567890" {
		t.Fatalf("unexpected raw value %q", in.RawValue())
	}
}

func TestRawValueDropsUnplacedDigits(t *testing.T) {
	in, _ := New(Config{DefaultValue: "112345678901234"})
	if in.RawValue() != "11234567890" {
		t.Fatalf("unexpected raw value %q", in.RawValue())
	}
	if in.Digits() != "112345678901234" {
		t.Fatalf("typed digits must be kept, got %q", in.Digits())
	}
}

func TestSetCountrySwapsDialCode(t *testing.T) {
	in, _ := New(Config{DefaultValue: "441234567890"})

	if err := in.SetCountry("US"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Digits() != "11234567890" {
		t.Fatalf("unexpected digits %q", in.Digits())
	}
	if in.Country() != "us" {
		t.Fatalf("expected us, got %q", in.Country())
	}
	if in.Value() != "+1 (123) 456-7890" {
		t.Fatalf("unexpected value %q", in.Value())
	}
}

func TestSetCountryInvalid(t *testing.T) {
	in, _ := New(Config{DefaultValue: "44", ExcludedCountries: []string{"fr"}})

	for _, c := range []string{"zz", "fr", ""} {
		if err := in.SetCountry(c); !errors.Is(err, ErrInvalidCountryCode) {
			t.Fatalf("SetCountry(%q): expected ErrInvalidCountryCode, got %v", c, err)
		}
	}
	if in.Digits() != "44" || in.Preferred() != nil {
		t.Fatal("failed SetCountry must not change state")
	}
}

func TestPreferredCountryPersistsWhileConsistent(t *testing.T) {
	in, _ := New(Config{DefaultValue: "1"})
	if err := in.SetCountry("ca"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []struct {
		value string
		want  string
	}{
		{"1", "ca"},
		{"14", "ca"},
		{"1416", "ca"},
		{"1212", "us"},
		{"1", "ca"},
		{"1809", "do"},
	}
	for _, s := range steps {
		in.SetValue(s.value)
		if in.Country() != s.want {
			t.Fatalf("after %q: expected %s, got %s", s.value, s.want, in.Country())
		}
	}

	in.SetValue("1")
	in.ClearCountry()
	if in.Country() != "us" {
		t.Fatalf("expected detection after clearing, got %s", in.Country())
	}
}

func TestStateRestore(t *testing.T) {
	cfg := Config{IncludeTerritories: true}
	in, _ := New(cfg)
	in.SetValue("1")
	_ = in.SetCountry("ca")

	st := in.State()
	if st.Input != "1" || st.PreferredCountry != "ca" {
		t.Fatalf("unexpected state %+v", st)
	}

	restored := Restore(cfg, st)
	if restored.Country() != "ca" || restored.Value() != in.Value() {
		t.Fatalf("restore mismatch: %s %q", restored.Country(), restored.Value())
	}

	narrowed := Restore(Config{ExcludedCountries: []string{"ca"}}, st)
	if narrowed.Preferred() != nil {
		t.Fatal("expected preference outside the list to be dropped")
	}
	if narrowed.Country() != "us" {
		t.Fatalf("expected us, got %s", narrowed.Country())
	}
}

func TestCountriesReturnsCopy(t *testing.T) {
	in, _ := New(Config{ExcludedRegions: []countries.Region{countries.Europe}})
	list := in.Countries()
	if countries.Find(list, "gb") != nil {
		t.Fatal("expected europe to be excluded")
	}
	list[0].Code = "xx"
	if in.Countries()[0].Code == "xx" {
		t.Fatal("Countries must return a copy")
	}
}
