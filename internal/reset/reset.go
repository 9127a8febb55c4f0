// Package reset removes the files goanime-site leaves on disk: the config
// directory, the fallback directory next to the working dir and temp logs.
package reset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	configDirName     = ".goanime-site"
	fallbackConfigDir = ".goanime-site"
	tempLogPattern    = "goanime-site-*"
)

// Colors for terminal output
const (
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorNC     = "\033[0m" // No Color
)

// Options configures a reset run. Empty paths are filled from the
// environment by Defaults.
type Options struct {
	ConfigDir   string
	FallbackDir string
	TempDir     string
	Force       bool

	Out io.Writer
	In  io.Reader
}

// Defaults returns the real locations for the current user.
func Defaults(force bool) Options {
	opts := Options{
		FallbackDir: fallbackConfigDir,
		TempDir:     os.TempDir(),
		Force:       force,
		Out:         os.Stdout,
		In:          os.Stdin,
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts.ConfigDir = filepath.Join(home, configDirName)
	}
	return opts
}

type resetter struct {
	opts   Options
	reader *bufio.Reader
}

// Run performs the complete reset process
func Run(opts Options) error {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	r := &resetter{opts: opts, reader: bufio.NewReader(opts.In)}

	r.printBanner()

	if !opts.Force {
		r.printWarning("This will remove the GoAnime Site configuration and logs")
		if !r.confirm("Are you sure you want to continue? (y/N): ") {
			r.printInfo("Reset cancelled")
			return nil
		}
		fmt.Fprintln(opts.Out)
	}

	if err := r.removeConfig(); err != nil {
		return err
	}
	r.removeFallbackConfig()
	r.removeTempFiles()

	r.printCompletion()
	return nil
}

func (r *resetter) printBanner() {
	out := r.opts.Out
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s╔════════════════════════════════════════════╗%s\n", colorBlue, colorNC)
	fmt.Fprintf(out, "%s║      GoAnime Site Reset                    ║%s\n", colorBlue, colorNC)
	fmt.Fprintf(out, "%s╚════════════════════════════════════════════╝%s\n", colorBlue, colorNC)
	fmt.Fprintln(out)
}

func (r *resetter) confirm(prompt string) bool {
	fmt.Fprint(r.opts.Out, prompt)
	response, err := r.reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func (r *resetter) removeConfig() error {
	configDir := r.opts.ConfigDir
	if configDir == "" {
		return fmt.Errorf("failed to get home directory")
	}

	// Check if config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		r.printInfo(fmt.Sprintf("No configuration directory found at %s", configDir))
		return nil
	}

	r.printInfo(fmt.Sprintf("Found configuration directory: %s", configDir))

	// Show what will be deleted
	for _, name := range []string{"config.yaml", "debug.log"} {
		if _, err := os.Stat(filepath.Join(configDir, name)); err == nil {
			r.printInfo("  - " + name)
		}
	}
	if size, err := dirSize(configDir); err == nil {
		r.printInfo(fmt.Sprintf("  Total size: %s", humanize.Bytes(uint64(size))))
	}

	if !r.opts.Force {
		fmt.Fprintln(r.opts.Out)
		if !r.confirm("Remove configuration and logs? (y/N): ") {
			r.printInfo(fmt.Sprintf("Configuration directory kept at %s", configDir))
			return nil
		}
	}

	if err := os.RemoveAll(configDir); err != nil {
		return fmt.Errorf("failed to remove config directory: %w", err)
	}
	r.printSuccess("Configuration directory removed")
	return nil
}

func (r *resetter) removeFallbackConfig() {
	dir := r.opts.FallbackDir
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return
	}

	r.printWarning(fmt.Sprintf("Found fallback config directory: %s", dir))
	if !r.opts.Force && !r.confirm("Remove it? (y/N): ") {
		return
	}
	if err := os.RemoveAll(dir); err == nil {
		r.printSuccess("Fallback config directory removed")
	}
}

func (r *resetter) removeTempFiles() {
	if r.opts.TempDir == "" {
		return
	}
	r.printInfo("Checking for temporary files...")

	tempCount := 0
	files, err := filepath.Glob(filepath.Join(r.opts.TempDir, tempLogPattern))
	if err == nil {
		for _, file := range files {
			if err := os.Remove(file); err == nil {
				tempCount++
			}
		}
	}

	if tempCount > 0 {
		r.printSuccess(fmt.Sprintf("Removed %d temporary file(s)", tempCount))
	} else {
		r.printInfo("No temporary files found")
	}
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

func (r *resetter) printCompletion() {
	out := r.opts.Out
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s╔════════════════════════════════════════════╗%s\n", colorGreen, colorNC)
	fmt.Fprintf(out, "%s║  GoAnime Site reset complete! ✓            ║%s\n", colorGreen, colorNC)
	fmt.Fprintf(out, "%s╚════════════════════════════════════════════╝%s\n", colorGreen, colorNC)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "A fresh config.yaml is written the next time goanime-site starts.")
	fmt.Fprintln(out)
}

func (r *resetter) printInfo(msg string) {
	fmt.Fprintf(r.opts.Out, "%sℹ%s %s\n", colorBlue, colorNC, msg)
}

func (r *resetter) printSuccess(msg string) {
	fmt.Fprintf(r.opts.Out, "%s✓%s %s\n", colorGreen, colorNC, msg)
}

func (r *resetter) printWarning(msg string) {
	fmt.Fprintf(r.opts.Out, "%s⚠%s %s\n", colorYellow, colorNC, msg)
}
