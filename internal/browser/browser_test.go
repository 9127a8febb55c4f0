package browser

import "testing"

func TestCommand(t *testing.T) {
	cases := []struct {
		goos string
		name string
		n    int
	}{
		{"darwin", "open", 1},
		{"windows", "rundll32", 2},
		{"linux", "xdg-open", 1},
		{"freebsd", "xdg-open", 1},
	}
	for _, tc := range cases {
		name, args := Command(tc.goos, "https://example.com")
		if name != tc.name || len(args) != tc.n || args[len(args)-1] != "https://example.com" {
			t.Errorf("%s: got %s %v", tc.goos, name, args)
		}
	}
}

func TestOpenEmpty(t *testing.T) {
	if err := Open(""); err == nil {
		t.Fatal("expected error for empty url")
	}
}
