package release

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Canonical normalizes a tag to semver form with a leading "v". Tags that are
// not valid semver are returned unchanged.
func Canonical(tag string) string {
	v := tag
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return tag
	}
	return semver.Canonical(v)
}

// Newer reports whether latest is a newer release than current.
func Newer(current, latest string) (bool, error) {
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	// Dev builds are always behind.
	if current == "vdev" {
		return true, nil
	}

	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid current version: %s", current)
	}
	if !semver.IsValid(latest) {
		return false, fmt.Errorf("invalid latest version: %s", latest)
	}
	return semver.Compare(current, latest) < 0, nil
}
