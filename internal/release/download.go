package release

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

)

// ChecksumFile is the release-wide checksum manifest name.
const ChecksumFile = "checksums-sha256.txt"

var ErrChecksumMismatch = errors.New("checksum mismatch")

// Fetcher downloads release files.
type Fetcher struct {
	HTTP *http.Client
}

// NewFetcher returns a Fetcher with a generous timeout for binary downloads.
func NewFetcher() *Fetcher {
	return &Fetcher{HTTP: &http.Client{Timeout: 5 * time.Minute}}
}

// Download streams url into destPath.
func (f *Fetcher) Download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	n, err := io.Copy(out, resp.Body)
	// a failed Close can mean the data never reached the disk
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(destPath), err)
	}
	log.Debug("Downloaded %s (%d bytes) to %s", url, n, destPath)
	return nil
}

// Fetch reads a small remote file fully into memory.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayload))
}

func (f *Fetcher) client() *http.Client {
	if f == nil || f.HTTP == nil {
		return http.DefaultClient
	}
	return f.HTTP
}

// ParseChecksums reads a sha256sum style manifest into file name -> digest.
// Both "<hex>  name" and "<hex> *name" forms are accepted.
func ParseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !isSHA256(fields[0]) {
			continue
		}
		name := strings.TrimPrefix(fields[len(fields)-1], "*")
		name = filepath.Base(name)
		if _, seen := sums[name]; seen {
			continue
		}
		sums[name] = strings.ToLower(fields[0])
	}
	return sums
}

// Verify hashes the file at path and compares it with the expected digest.
func Verify(path, expected string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file for verification: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to calculate checksum: %w", err)
	}
	actual := hex.EncodeToString(h.Sum(nil))
	expected = strings.ToLower(strings.TrimSpace(expected))
	if actual != expected {
		return fmt.Errorf("%w for %s\n\nExpected: %s\nActual:   %s",
			ErrChecksumMismatch, filepath.Base(path), expected, actual)
	}
	return nil
}

func isSHA256(v string) bool {
	if len(v) != 64 {
		return false
	}
	for _, ch := range v {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') && (ch < 'A' || ch > 'F') {
			return false
		}
	}
	return true
}
