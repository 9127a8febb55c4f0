package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/app"
	"github.com/alvarorichard/goanime-site/internal/config"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/alvarorichard/goanime-site/internal/reset"
	"github.com/alvarorichard/goanime-site/internal/selection"
	"github.com/alvarorichard/goanime-site/internal/updater"
	tea "github.com/charmbracelet/bubbletea"
)

// version is injected at build time via -ldflags
var version = "dev"

func main() {
	// Debug logging off by default; enable with --debug
	debugMode := false
	for _, arg := range os.Args {
		switch arg {
		case "--debug":
			debugMode = true
		case "--no-debug":
			debugMode = false
		}
	}

	// Check for command line arguments FIRST (before the TUI starts)
	if len(os.Args) > 1 {
		args := os.Args[2:]
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Printf("GoAnime Site v%s\n", version)
			os.Exit(0)
		case "help", "--help", "-h":
			showHelp()
			os.Exit(0)
		case "logs", "--logs":
			// Initialize logger just to get the path
			if err := logger.Initialize(false); err != nil {
				log.Fatal("Failed to initialize logger:", err)
			}
			fmt.Printf("Log file location: %s\n", logger.GetLogPath())
			os.Exit(0)
		case "resolve":
			os.Exit(runResolve(args))
		case "get":
			os.Exit(runGet(args))
		case "check":
			os.Exit(runCheck(args))
		case "reset", "--reset":
			force := hasArg(args, "--force", "-f")
			if err := reset.Run(reset.Defaults(force)); err != nil {
				fmt.Printf("Reset failed: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		default:
			if !strings.HasPrefix(os.Args[1], "-") {
				fmt.Printf("Unknown command: %s\n\n", os.Args[1])
				showHelp()
				os.Exit(1)
			}
		}
	}

	// Initialize logger (only when launching TUI)
	if err := logger.Initialize(debugMode); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.GetLogger().Close()

	if debugMode {
		fmt.Printf("Log file: %s\n", logger.GetLogPath())
		fmt.Println("Tail logs in another terminal with:")
		fmt.Printf("  tail -f %s\n\n", logger.GetLogPath())
	}

	logger.Info("Starting GoAnime Site v%s", version)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Info("Configuration loaded from %s", cfg.Path())

	client, err := newClient(cfg)
	if err != nil {
		log.Fatal("Failed to create release client:", err)
	}

	application := app.New(cfg, version, app.Options{
		Source:   client,
		Detector: selection.HostDetector{},
	})

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.MouseEnabled {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(application, programOpts...)
	if _, err := p.Run(); err != nil {
		log.Fatal("Error running program:", err)
	}
}

// setup loads config and logging for the command line flows.
func setup() (*config.Config, release.Client, error) {
	_ = logger.Initialize(false)
	cfg, err := config.Load()
	if err != nil {
		return nil, release.Client{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, release.Client{}, err
	}
	return cfg, client, nil
}

func newClient(cfg *config.Config) (release.Client, error) {
	client, err := release.NewClient(&http.Client{Timeout: cfg.Timeout()}, cfg.Release.Repo)
	if err != nil {
		return release.Client{}, err
	}
	return client.WithAPI(cfg.Release.APIURL), nil
}

func runGet(args []string) int {
	cfg, client, err := setup()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	dir := argValue(args, "--dir")
	if dir == "" {
		dir = cfg.Download.Dir
	}

	u := updater.New(client, release.NewFetcher(), cfg.Release.DownloadBase)
	_, err = u.Get(context.Background(), updater.GetOptions{
		Tag:      argValue(args, "--tag"),
		Platform: argValue(args, "--platform"),
		Arch:     argValue(args, "--arch"),
		Dir:      dir,
		Force:    hasArg(args, "--force", "-f"),
	})
	if err != nil {
		fmt.Printf("Download failed: %v\n", err)
		return 1
	}
	return 0
}

func runCheck(args []string) int {
	cfg, client, err := setup()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	u := updater.New(client, release.NewFetcher(), cfg.Release.DownloadBase)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	if _, err := u.Check(ctx, updater.CheckOptions{Current: argValue(args, "--current")}); err != nil {
		fmt.Printf("Check failed: %v\n", err)
		return 1
	}
	return 0
}

func runResolve(args []string) int {
	cfg, client, err := setup()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	format := argValue(args, "--format")
	if format == "" {
		format = "table"
	}

	u := updater.New(client, release.NewFetcher(), cfg.Release.DownloadBase)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	table, _, err := u.Table(ctx, argValue(args, "--tag"))
	if err != nil {
		fmt.Printf("Resolve failed: %v\n", err)
		return 1
	}

	if err := writeTable(os.Stdout, table, format); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}

// argValue returns the value of name given as "name value" or "name=value".
func argValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"=")
		}
	}
	return ""
}

func hasArg(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

func showHelp() {
	fmt.Printf(`GoAnime Site v%s - the GoAnime landing and download page, in your terminal

USAGE:
  goanime-site [flags]
  goanime-site <command> [options]

TUI PAGES:
  Home        What GoAnime is, its features, installation methods and usage
  Download    Latest release with per-platform download links

CLI COMMANDS:
  goanime-site                                 Launch interactive TUI
  goanime-site resolve [--format table|json|yaml] [--tag TAG]
                                               Print the download links of a release
  goanime-site get [--platform mac|linux|windows] [--arch amd64|arm64]
                   [--dir DIR] [--tag TAG] [--force]
                                               Download GoAnime for this (or the given) system
  goanime-site check --current TAG             Check whether a newer GoAnime is out
  goanime-site reset [--force]                 Remove configuration and logs
  goanime-site --help, -h                      Show this help message
  goanime-site --version, -v                   Show version information
  goanime-site --debug                         Launch with debug logging
  goanime-site --logs                          Show debug log file location

EXAMPLES:
  goanime-site                         # Start the interactive interface
  goanime-site resolve --format json   # Machine readable download table
  goanime-site get --dir ~/bin         # Fetch the build for this machine
  goanime-site check --current v1.0.0  # Is there something newer?

CONFIGURATION:
  Config: ~/.goanime-site/config.yaml
  Logs:   ~/.goanime-site/debug.log (rotated to debug.log.1 past 1 MiB;
          GOANIME_SITE_LOG_LEVEL=debug|info|warn|error)
  Env:    GOANIME_SITE_LANGUAGE, GOANIME_SITE_RELEASE_REPO, ...

KEYBOARD SHORTCUTS (in TUI):
  Tab         Switch pages
  Enter       Focus the current page
  Esc         Leave the page / close dialogs
  Ctrl+K      Command palette
  r           Retry a download page that failed to load
  g           Cycle language (pt, en, es)
  ?           Help
  q, Ctrl+C   Quit

GoAnime: https://github.com/alvarorichard/GoAnime
`, version)
}
