// Package selection tracks which architecture the user wants for each
// platform and picks the download option to display.
package selection

import (
	"strings"
	"sync"

	"github.com/alvarorichard/goanime-site/internal/assets"
)

// State holds the chosen architecture per platform.
type State struct {
	mu       sync.RWMutex
	arch     map[assets.Platform]assets.Arch
	detected assets.Platform
}

// Defaults returns the initial choices before detection: arm64 for mac,
// amd64 for linux and windows.
func Defaults() map[assets.Platform]assets.Arch {
	return map[assets.Platform]assets.Arch{
		assets.Mac:     assets.ARM64,
		assets.Linux:   assets.AMD64,
		assets.Windows: assets.AMD64,
	}
}

// New builds a State from the defaults, adjusted once by d. A nil detector
// or a detection error leaves the defaults untouched.
func New(d Detector) *State {
	s := &State{arch: Defaults()}
	if d == nil {
		return s
	}
	env, err := d.Detect()
	if err != nil {
		log.Warn("Platform detection failed, keeping defaults: %v", err)
		return s
	}
	s.apply(env)
	return s
}

func (s *State) apply(env Env) {
	osName := strings.ToLower(env.OS)
	arch := strings.ToLower(env.Arch)

	switch {
	case isMac(osName):
		s.detected = assets.Mac
		if strings.Contains(arch, "arm") || strings.Contains(arch, "aarch64") {
			s.arch[assets.Mac] = assets.ARM64
		} else {
			s.arch[assets.Mac] = assets.AMD64
		}
	case strings.Contains(osName, "linux"):
		s.detected = assets.Linux
		if strings.Contains(arch, "aarch64") || strings.Contains(arch, "arm64") {
			s.arch[assets.Linux] = assets.ARM64
		}
	case strings.Contains(osName, "win"):
		s.detected = assets.Windows
	}
}

func isMac(osName string) bool {
	return strings.Contains(osName, "darwin") || strings.Contains(osName, "mac")
}

// DetectedPlatform is the platform the environment identified as.
func (s *State) DetectedPlatform() (assets.Platform, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detected, s.detected != ""
}

// Arch returns the chosen architecture for p.
func (s *State) Arch(p assets.Platform) assets.Arch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.arch[p]; ok {
		return a
	}
	return assets.AMD64
}

// Select records a new choice for p only. Unsupported pairs are ignored.
func (s *State) Select(p assets.Platform, a assets.Arch) bool {
	if !p.Supports(a) {
		return false
	}
	s.mu.Lock()
	s.arch[p] = a
	s.mu.Unlock()
	log.Info("Selected %s/%s", p, a)
	return true
}

// Current returns the option matching the chosen architecture, the first
// option when none matches, or false when the platform has no options.
func (s *State) Current(t assets.Table, p assets.Platform) (assets.DownloadOption, bool) {
	opts := t.For(p)
	if len(opts) == 0 {
		return assets.DownloadOption{}, false
	}
	want := s.Arch(p)
	for _, o := range opts {
		if o.Arch == want {
			return o, true
		}
	}
	return opts[0], true
}

// PrimaryURL is the primary link of the current option for p.
func (s *State) PrimaryURL(t assets.Table, p assets.Platform) (string, bool) {
	opt, ok := s.Current(t, p)
	if !ok {
		return "", false
	}
	return assets.PrimaryURL(opt), true
}
