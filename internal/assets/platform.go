package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Platform is a download target operating system.
type Platform string

const (
	Mac     Platform = "mac"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// Arch is a download target CPU architecture.
type Arch string

const (
	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Platforms lists every platform in display order.
func Platforms() []Platform { return []Platform{Mac, Linux, Windows} }

// Archs lists every architecture in declared order.
func Archs() []Arch { return []Arch{AMD64, ARM64} }

// ID is the identifier used in published asset names.
func (p Platform) ID() string {
	switch p {
	case Mac:
		return "darwin"
	default:
		return string(p)
	}
}

// Supports reports whether a build is ever published for arch on p.
// Windows only ships amd64.
func (p Platform) Supports(a Arch) bool {
	if p == Windows {
		return a == AMD64
	}
	return a == AMD64 || a == ARM64
}

// ParsePlatform accepts both display names and asset identifiers.
func ParsePlatform(v string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "mac", "macos", "darwin", "osx":
		return Mac, nil
	case "linux":
		return Linux, nil
	case "windows", "win":
		return Windows, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, v)
	}
}

// ParseArch accepts Go and vendor spellings of the supported architectures.
func ParseArch(v string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "amd64", "x86_64", "x64":
		return AMD64, nil
	case "arm64", "aarch64":
		return ARM64, nil
	default:
		return "", fmt.Errorf("unsupported arch: %s", v)
	}
}
