package updater

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/assets"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/alvarorichard/goanime-site/internal/selection"
	"github.com/dustin/go-humanize"
)

var log = logger.For("updater")

// Colors for terminal output
const (
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorNC     = "\033[0m" // No Color
)

// Updater runs the command line release flows.
type Updater struct {
	Source       Source
	Downloader   Downloader
	DownloadBase string
	Detector     selection.Detector

	Out io.Writer
	In  io.Reader
}

// New wires an Updater to the terminal and the host detector.
func New(src Source, dl Downloader, downloadBase string) *Updater {
	return &Updater{
		Source:       src,
		Downloader:   dl,
		DownloadBase: downloadBase,
		Detector:     selection.HostDetector{},
		Out:          os.Stdout,
		In:           os.Stdin,
	}
}

// Table fetches the release under tag (latest when empty) and resolves it.
func (u *Updater) Table(ctx context.Context, tag string) (assets.Table, *release.Release, error) {
	rel, err := u.Source.Tag(ctx, tag)
	if err != nil {
		return assets.Table{}, nil, err
	}
	table := assets.Resolve(rel, u.DownloadBase)
	log.Info("Resolved release %s for the command line", table.Tag)
	return table, rel, nil
}

// Check reports whether a newer GoAnime release than opts.Current exists.
func (u *Updater) Check(ctx context.Context, opts CheckOptions) (bool, error) {
	u.printBanner("GoAnime Release Check")

	if opts.Current == "" {
		return false, fmt.Errorf("current version required (use --current <tag>)")
	}
	u.printInfo(fmt.Sprintf("Current version: %s", release.Canonical(opts.Current)))
	u.printInfo("Checking for updates...")

	rel, err := u.Source.Tag(ctx, "")
	if err != nil {
		return false, fmt.Errorf("failed to check for updates: %w", err)
	}
	u.printInfo(fmt.Sprintf("Latest version: %s", rel.Tag))

	available, err := release.Newer(opts.Current, rel.Tag)
	if err != nil {
		return false, fmt.Errorf("version comparison failed: %w", err)
	}
	if !available {
		u.printSuccess("Already up to date! You're running the latest version.")
		return false, nil
	}

	u.printSuccess("Update available!")
	fmt.Fprintln(u.Out)
	fmt.Fprintf(u.Out, "Update available: %s → %s\n", release.Canonical(opts.Current), rel.Tag)

	if rel.Body != "" {
		fmt.Fprintln(u.Out)
		lines := strings.Split(strings.TrimSpace(rel.Body), "\n")
		for i, line := range lines {
			if i >= 5 {
				fmt.Fprintln(u.Out, "  ...")
				break
			}
			fmt.Fprintf(u.Out, "  %s\n", strings.TrimRight(line, "\r"))
		}
	}
	fmt.Fprintln(u.Out, "\nRun 'goanime-site get' to download it")
	return true, nil
}

// Get downloads the primary file for the requested or detected platform
// into opts.Dir and returns its path.
func (u *Updater) Get(ctx context.Context, opts GetOptions) (string, error) {
	u.printBanner("GoAnime Downloader")

	u.printInfo("Fetching release information...")
	table, _, err := u.Table(ctx, opts.Tag)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release: %w", err)
	}
	u.printInfo(fmt.Sprintf("Release: %s", release.Canonical(table.Tag)))
	if table.Prerelease {
		u.printWarning("This is a pre-release")
	}

	opt, err := u.choose(table, opts)
	if err != nil {
		return "", err
	}

	url := assets.PrimaryURL(opt)
	name := assets.PrimaryName(opt)
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	dest := filepath.Join(dir, name)

	if _, err := os.Stat(dest); err == nil && !opts.Force {
		if !u.confirm(fmt.Sprintf("%s already exists. Overwrite? (y/N): ", dest)) {
			u.printInfo("Download cancelled. No changes were made.")
			return "", nil
		}
	}

	size := "unknown size"
	if n := assets.PrimarySize(opt); n > 0 {
		size = humanize.Bytes(uint64(n))
	}
	u.printInfo(fmt.Sprintf("Downloading %s (%s)...", name, size))
	if err := u.downloadAndVerify(ctx, table.ChecksumURL, url, name, dest); err != nil {
		return "", err
	}

	u.printCompletion(dest)
	return dest, nil
}

// choose applies the requested platform and arch on top of detection.
func (u *Updater) choose(table assets.Table, opts GetOptions) (assets.DownloadOption, error) {
	sel := selection.New(u.Detector)

	p, ok := sel.DetectedPlatform()
	if opts.Platform != "" {
		parsed, err := assets.ParsePlatform(opts.Platform)
		if err != nil {
			return assets.DownloadOption{}, err
		}
		p, ok = parsed, true
	}
	if !ok {
		return assets.DownloadOption{}, fmt.Errorf("%w: could not detect this system, pass --platform", assets.ErrUnknownPlatform)
	}

	var want assets.Arch
	if opts.Arch != "" {
		a, err := assets.ParseArch(opts.Arch)
		if err != nil {
			return assets.DownloadOption{}, err
		}
		if !sel.Select(p, a) {
			return assets.DownloadOption{}, fmt.Errorf("%w: %s/%s", ErrNoOption, p, a)
		}
		want = a
	}

	opt, ok := sel.Current(table, p)
	if !ok || (want != "" && opt.Arch != want) {
		return assets.DownloadOption{}, fmt.Errorf("%w: %s/%s", ErrNoOption, p, sel.Arch(p))
	}
	u.printInfo(fmt.Sprintf("Platform: %s/%s", p, opt.Arch))
	return opt, nil
}

// Helper functions for output

func (u *Updater) printBanner(title string) {
	fmt.Fprintln(u.Out)
	fmt.Fprintf(u.Out, "%s╔════════════════════════════════════════════╗%s\n", colorBlue, colorNC)
	fmt.Fprintf(u.Out, "%s║ %-42s ║%s\n", colorBlue, title, colorNC)
	fmt.Fprintf(u.Out, "%s╚════════════════════════════════════════════╝%s\n", colorBlue, colorNC)
	fmt.Fprintln(u.Out)
}

func (u *Updater) printCompletion(path string) {
	fmt.Fprintln(u.Out)
	fmt.Fprintf(u.Out, "%s╔════════════════════════════════════════════╗%s\n", colorGreen, colorNC)
	fmt.Fprintf(u.Out, "%s║  GoAnime downloaded! 🚀                     ║%s\n", colorGreen, colorNC)
	fmt.Fprintf(u.Out, "%s╚════════════════════════════════════════════╝%s\n", colorGreen, colorNC)
	fmt.Fprintln(u.Out)
	fmt.Fprintf(u.Out, "Saved to %s\n", path)
	fmt.Fprintln(u.Out)
}

func (u *Updater) confirm(prompt string) bool {
	reader := bufio.NewReader(u.In)
	fmt.Fprint(u.Out, prompt)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func (u *Updater) printInfo(msg string) {
	fmt.Fprintf(u.Out, "%sℹ%s %s\n", colorBlue, colorNC, msg)
}

func (u *Updater) printSuccess(msg string) {
	fmt.Fprintf(u.Out, "%s✓%s %s\n", colorGreen, colorNC, msg)
}

func (u *Updater) printWarning(msg string) {
	fmt.Fprintf(u.Out, "%s⚠%s %s\n", colorYellow, colorNC, msg)
}

func (u *Updater) printError(msg string) {
	fmt.Fprintf(u.Out, "%s✗%s %s\n", colorRed, colorNC, msg)
}
