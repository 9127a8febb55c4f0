// Package assets maps the files uploaded to a GoAnime release onto
// per-platform download options.
package assets

import (
	"strings"
	"sync"

	"github.com/alvarorichard/goanime-site/internal/release"
)

const (
	binaryPrefix    = "goanime"
	installerPrefix = "GoAnime-Installer-"
	installerSuffix = ".exe"
)

// DownloadOption is the resolved bundle of links and sizes for one
// platform and architecture.
type DownloadOption struct {
	Platform      Platform `json:"platform" yaml:"platform"`
	Arch          Arch     `json:"arch" yaml:"arch"`
	BinaryName    string   `json:"binaryName" yaml:"binary_name"`
	DownloadURL   string   `json:"downloadUrl" yaml:"download_url"`
	ArchiveName   string   `json:"archiveName,omitempty" yaml:"archive_name,omitempty"`
	ArchiveURL    string   `json:"archiveUrl,omitempty" yaml:"archive_url,omitempty"`
	InstallerName string   `json:"installerName,omitempty" yaml:"installer_name,omitempty"`
	InstallerURL  string   `json:"installerUrl,omitempty" yaml:"installer_url,omitempty"`
	Size          int64    `json:"size" yaml:"size"`
	InstallerSize int64    `json:"installerSize" yaml:"installer_size"`
}

// HasArchive reports whether a compressed bundle was published.
func (o DownloadOption) HasArchive() bool { return o.ArchiveURL != "" }

// HasInstaller reports whether a windows installer was published.
func (o DownloadOption) HasInstaller() bool { return o.InstallerURL != "" }

// Table holds the download options of one release, keyed by platform.
type Table struct {
	Tag         string                        `json:"tag" yaml:"tag"`
	Prerelease  bool                          `json:"prerelease" yaml:"prerelease"`
	ChecksumURL string                        `json:"checksumUrl,omitempty" yaml:"checksum_url,omitempty"`
	Options     map[Platform][]DownloadOption `json:"options" yaml:"options"`
}

// For returns the options for p in architecture order.
func (t Table) For(p Platform) []DownloadOption {
	return t.Options[p]
}

// Empty reports whether no platform has any option.
func (t Table) Empty() bool {
	for _, opts := range t.Options {
		if len(opts) > 0 {
			return false
		}
	}
	return true
}

// BinaryName is the standalone binary name for p and a.
func BinaryName(p Platform, a Arch) string {
	return binaryPrefix + "-" + p.ID() + "-" + string(a)
}

// ArchiveName is the bundle name for p and a: zip on windows, tar.gz elsewhere.
func ArchiveName(p Platform, a Arch) string {
	if p == Windows {
		return BinaryName(p, a) + ".zip"
	}
	return BinaryName(p, a) + ".tar.gz"
}

func isInstaller(a release.Asset) bool {
	return strings.HasPrefix(a.Name, installerPrefix) && strings.HasSuffix(a.Name, installerSuffix)
}

// Resolve builds the download table for rel. A nil release yields an empty
// list for every platform. Resolve never fails and has no side effects.
//
// Missing binaries fall back to <downloadBase>/<tag>/<binaryName>, which may
// not exist if the publishing convention drifts.
func Resolve(rel *release.Release, downloadBase string) Table {
	t := Table{Options: make(map[Platform][]DownloadOption, 3)}
	for _, p := range Platforms() {
		t.Options[p] = []DownloadOption{}
	}
	if rel == nil {
		return t
	}

	t.Tag = rel.Tag
	t.Prerelease = rel.IsPrerelease()
	if sum, ok := rel.FindAsset(release.ChecksumFile); ok {
		t.ChecksumURL = sum.URL
	}

	base := strings.TrimRight(downloadBase, "/")
	if base == "" {
		base = release.DefaultDownloadBase
	}

	for _, p := range Platforms() {
		for _, a := range Archs() {
			if !p.Supports(a) {
				continue
			}
			bin := BinaryName(p, a)
			arc := ArchiveName(p, a)

			binAsset, hasBin := rel.FindAsset(bin)
			arcAsset, hasArc := rel.FindAsset(arc)
			var instAsset release.Asset
			hasInst := false
			if p == Windows {
				instAsset, hasInst = rel.FindAssetFunc(isInstaller)
			}
			if !hasBin && !hasArc && !hasInst {
				continue
			}

			opt := DownloadOption{
				Platform:    p,
				Arch:        a,
				BinaryName:  bin,
				DownloadURL: base + "/" + rel.Tag + "/" + bin,
			}
			if hasBin {
				opt.DownloadURL = binAsset.URL
				opt.Size = binAsset.Size
			}
			if hasArc {
				opt.ArchiveName = arc
				opt.ArchiveURL = arcAsset.URL
				if arcAsset.Size > 0 {
					opt.Size = arcAsset.Size
				}
			}
			if hasInst {
				opt.InstallerName = instAsset.Name
				opt.InstallerURL = instAsset.URL
				opt.InstallerSize = instAsset.Size
			}
			t.Options[p] = append(t.Options[p], opt)
		}
	}
	return t
}

// Resolver memoizes Resolve for the most recently seen release.
type Resolver struct {
	DownloadBase string

	mu    sync.Mutex
	last  *release.Release
	table Table
	ok    bool
}

// Resolve returns the cached table when rel is the same release object as
// the previous call.
func (r *Resolver) Resolve(rel *release.Release) Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ok && r.last == rel {
		return r.table
	}
	r.last = rel
	r.table = Resolve(rel, r.DownloadBase)
	r.ok = true
	return r.table
}
