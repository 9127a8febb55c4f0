package updater

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/release"
)

// downloadAndVerify fetches url next to dest, checks it against the
// release checksum manifest when one is published, then moves it into place.
func (u *Updater) downloadAndVerify(ctx context.Context, checksumURL, url, name, dest string) error {
	expected := ""
	if checksumURL == "" {
		u.printWarning("Release has no checksum manifest, skipping verification")
	} else {
		// Download checksum first (it's small)
		data, err := u.Downloader.Fetch(ctx, checksumURL)
		if err != nil {
			return fmt.Errorf("failed to download checksum: %w", err)
		}
		sum, ok := release.ParseChecksums(data)[name]
		if !ok {
			u.printWarning(fmt.Sprintf("No checksum listed for %s, skipping verification", name))
		}
		expected = sum
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".goanime-download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := u.Downloader.Download(ctx, url, tmpPath); err != nil {
		return fmt.Errorf("failed to download %s: %w", name, err)
	}
	u.printSuccess("Downloaded successfully")

	if expected != "" {
		u.printInfo("Verifying checksum...")
		if err := release.Verify(tmpPath, expected); err != nil {
			log.Error("Checksum verification failed for %s: %v", name, err)
			if errors.Is(err, release.ErrChecksumMismatch) {
				u.printError("SECURITY ALERT: Checksum verification failed!")
				return fmt.Errorf("%w\n\nThe downloaded file may be corrupted or tampered with.\nDownload discarded for your safety", err)
			}
			return err
		}
		u.printSuccess("Checksum verified")
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	// CreateTemp leaves the file 0600; give it the mode a browser download would get.
	mode := os.FileMode(0644)
	if isRawBinary(name) {
		mode = 0755
	}
	if err := os.Chmod(dest, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dest, err)
	}
	log.Info("Saved %s to %s", url, dest)
	return nil
}

func isRawBinary(name string) bool {
	for _, ext := range []string{".tar.gz", ".zip", ".exe"} {
		if strings.HasSuffix(name, ext) {
			return false
		}
	}
	return true
}
