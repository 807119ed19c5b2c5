package phone

import "testing"

func TestCallingCode(t *testing.T) {
	cases := map[string]string{
		"us":   "1",
		"GB":   "44",
		" je ": "44",
		"kz":   "7",
		"zz":   "",
		"":     "",
	}

	for region, want := range cases {
		if got := CallingCode(region); got != want {
			t.Fatalf("CallingCode(%q) = %q, want %q", region, got, want)
		}
	}
}
