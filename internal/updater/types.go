package updater

import (
	"context"
	"errors"

	"github.com/alvarorichard/goanime-site/internal/release"
)

// ErrNoOption is returned when the release has nothing for the requested
// platform and architecture.
var ErrNoOption = errors.New("no download published for this platform")

// Source looks up releases. An empty tag means the latest one.
type Source interface {
	Tag(ctx context.Context, tag string) (*release.Release, error)
}

// Downloader fetches release files.
type Downloader interface {
	Download(ctx context.Context, url, destPath string) error
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// GetOptions configures the get command
type GetOptions struct {
	Tag      string // Release tag, empty for latest
	Platform string // Overrides detection
	Arch     string // Overrides detection
	Dir      string // Destination directory
	Force    bool   // Overwrite without asking
}

// CheckOptions configures the check command
type CheckOptions struct {
	Current string // Installed GoAnime version
}
