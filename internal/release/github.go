package release

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alvarorichard/goanime-site/internal/logger"
)

var log = logger.For("release")

const (
	DefaultRepo         = "alvarorichard/GoAnime"
	DefaultAPI          = "https://api.github.com"
	DefaultDownloadBase = "https://github.com/" + DefaultRepo + "/releases/download"
	DefaultTimeout      = 30 * time.Second

	userAgent = "goanime-site"
)

var (
	// ErrFetch marks every failure to obtain release metadata, whatever the cause.
	ErrFetch = errors.New("release fetch failed")
	// ErrNoRelease is returned when the repository has no published release.
	ErrNoRelease = fmt.Errorf("%w: no release published", ErrFetch)

	errNoRepo = errors.New("release repo not set")
)

// Client queries the GitHub releases API for one repository.
type Client struct {
	http *http.Client
	repo string
	api  string
}

// NewClient builds a client for repo ("owner/name"). A nil http client gets
// a default one with DefaultTimeout.
func NewClient(h *http.Client, repo string) (Client, error) {
	if repo == "" {
		return Client{}, errNoRepo
	}
	if h == nil {
		h = &http.Client{Timeout: DefaultTimeout}
	}
	return Client{http: h, repo: repo, api: DefaultAPI}, nil
}

// WithAPI points the client at a different API host; empty restores the default.
func (c Client) WithAPI(v string) Client {
	if v == "" {
		c.api = DefaultAPI
		return c
	}
	c.api = strings.TrimRight(v, "/")
	return c
}

// Repo returns the configured "owner/name".
func (c Client) Repo() string { return c.repo }

// LatestURL is the endpoint Latest requests.
func (c Client) LatestURL() string {
	return fmt.Sprintf("%s/repos/%s/releases/latest", c.api, c.repo)
}

// TagURL is the endpoint for a specific tag.
func (c Client) TagURL(tag string) string {
	return fmt.Sprintf("%s/repos/%s/releases/tags/%s", c.api, c.repo, tag)
}

// Latest fetches the latest published release.
func (c Client) Latest(ctx context.Context) (*Release, error) {
	return c.get(ctx, c.LatestURL())
}

// Tag fetches the release published under tag.
func (c Client) Tag(ctx context.Context, tag string) (*Release, error) {
	if tag == "" {
		return c.Latest(ctx)
	}
	return c.get(ctx, c.TagURL(tag))
}

func (c Client) get(ctx context.Context, url string) (*Release, error) {
	if c.repo == "" {
		return nil, errNoRepo
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug("Fetching release metadata: %s", url)
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNoRelease
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GitHub API error: HTTP %d", ErrFetch, res.StatusCode)
	}

	rel, err := Decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	log.Info("Fetched release %s (%d assets)", rel.Tag, len(rel.Assets))
	return rel, nil
}
