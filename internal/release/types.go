package release

import (
	"strings"
	"time"
)

// Release is an immutable snapshot of one published GoAnime release
type Release struct {
	Tag         string
	Prerelease  bool
	PublishedAt time.Time
	HTMLURL     string
	Body        string
	Assets      []Asset
}

// Asset is one uploaded file attached to a release. Size 0 means unknown.
type Asset struct {
	Name string
	URL  string
	Size int64
}

// IsPrerelease reports whether the release is flagged as a prerelease or
// carries a hyphenated tag such as "2.0.0-beta.1".
func (r *Release) IsPrerelease() bool {
	if r == nil {
		return false
	}
	return r.Prerelease || strings.Contains(r.Tag, "-")
}

// FindAsset finds an asset by exact name. The first match wins.
func (r *Release) FindAsset(name string) (Asset, bool) {
	return r.FindAssetFunc(func(a Asset) bool { return a.Name == name })
}

// FindAssetFunc returns the first asset accepted by match.
func (r *Release) FindAssetFunc(match func(Asset) bool) (Asset, bool) {
	if r == nil {
		return Asset{}, false
	}
	for _, a := range r.Assets {
		if match(a) {
			return a, true
		}
	}
	return Asset{}, false
}
