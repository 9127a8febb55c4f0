package selection

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/alvarorichard/goanime-site/internal/logger"
)

var log = logger.For("selection")

// Env is what the running environment says about itself. Values are free
// form: "darwin", "Linux", "aarch64", "x86_64" and so on.
type Env struct {
	OS   string
	Arch string
}

// Detector reports the platform and architecture of the running environment.
type Detector interface {
	Detect() (Env, error)
}

// HostDetector asks the host through gopsutil and falls back to the Go runtime.
type HostDetector struct{}

// Detect implements Detector.
func (HostDetector) Detect() (Env, error) {
	env := Env{OS: runtime.GOOS, Arch: runtime.GOARCH}

	info, err := host.Info()
	if err != nil {
		log.Warn("Host info unavailable, using runtime values: %v", err)
		return env, nil
	}
	if info.OS != "" {
		env.OS = info.OS
	}
	if info.KernelArch != "" {
		env.Arch = info.KernelArch
	} else if arch, err := host.KernelArch(); err == nil && arch != "" {
		env.Arch = arch
	}
	log.Debug("Detected environment: os=%s arch=%s", env.OS, env.Arch)
	return env, nil
}

// StaticDetector always reports the same environment.
type StaticDetector struct {
	Env Env
	Err error
}

// Detect implements Detector.
func (s StaticDetector) Detect() (Env, error) { return s.Env, s.Err }
