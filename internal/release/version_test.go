package release

import "testing"

func TestNewer(t *testing.T) {
	cases := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "v1.1.0", true},
		{"v1.1.0", "v1.1.0", false},
		{"v1.2.0", "1.1.9", false},
		{"dev", "v0.1.0", true},
		{"v1.0.0-beta.1", "v1.0.0", true},
	}
	for _, tc := range cases {
		got, err := Newer(tc.current, tc.latest)
		if err != nil {
			t.Fatalf("Newer(%q, %q): %v", tc.current, tc.latest, err)
		}
		if got != tc.want {
			t.Fatalf("Newer(%q, %q) = %v, want %v", tc.current, tc.latest, got, tc.want)
		}
	}
	if _, err := Newer("banana", "v1.0.0"); err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("1.2"); got != "v1.2.0" {
		t.Fatalf("Canonical(1.2) = %s", got)
	}
	if got := Canonical("nightly"); got != "nightly" {
		t.Fatalf("Canonical(nightly) = %s", got)
	}
}
