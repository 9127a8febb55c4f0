// Package download is the download page: it fetches the latest release,
// resolves it into per-platform options and lets the user pick, copy or
// open a link.
package download

import (
	"context"
	"time"

	"github.com/alvarorichard/goanime-site/internal/assets"
	"github.com/alvarorichard/goanime-site/internal/browser"
	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/alvarorichard/goanime-site/internal/selection"
	"github.com/alvarorichard/goanime-site/internal/ui/events"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var log = logger.For("download")

// Source is where release metadata comes from.
type Source interface {
	Latest(ctx context.Context) (*release.Release, error)
}

// Options wires the page to its collaborators. Zero fields get defaults.
type Options struct {
	Source       Source
	Repo         string
	DownloadBase string
	Timeout      time.Duration
	Detector     selection.Detector
	Copy         func(string) error
	Open         func(string) error
}

type phase int

const (
	idle phase = iota
	loading
	failed
	ready
)

type fetchedMsg struct {
	gen int
	rel *release.Release
	err error
}

type statusMsg struct {
	text string
	kind string // "success", "error", "info"
}

// Model is the download page.
type Model struct {
	tr   i18n.Translator
	opts Options

	phase    phase
	gen      int
	rel      *release.Release
	err      error
	resolver *assets.Resolver
	table    assets.Table
	sel      *selection.State
	focus    int

	spinner    spinner.Model
	vp         viewport.Model
	status     string
	statusKind string
	focused    bool
	width      int
	height     int
}

// New creates the page. Nothing is fetched until Init.
func New(tr i18n.Translator, opts Options) *Model {
	if opts.Repo == "" {
		opts.Repo = release.DefaultRepo
	}
	if opts.DownloadBase == "" {
		opts.DownloadBase = release.DefaultDownloadBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = release.DefaultTimeout
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		tr:      tr,
		opts:    opts,
		spinner: s,
		vp:      viewport.New(0, 0),
	}
}

// Init mounts the page the first time it is shown.
func (m *Model) Init() tea.Cmd {
	if m.phase != idle {
		return nil
	}
	return m.Mount()
}

// Mount discards all page state and starts a new fetch, the way a browser
// reload would. Results of earlier mounts are ignored.
func (m *Model) Mount() tea.Cmd {
	m.gen++
	m.phase = loading
	m.rel = nil
	m.err = nil
	m.status = ""
	m.focus = 0
	m.resolver = &assets.Resolver{DownloadBase: m.opts.DownloadBase}
	m.table = assets.Resolve(nil, m.opts.DownloadBase)
	m.sel = selection.New(m.opts.Detector)
	if p, ok := m.sel.DetectedPlatform(); ok {
		m.focus = platformIndex(p)
	}
	m.vp.GotoTop()
	m.render()

	log.Info("Download page mounted (generation %d)", m.gen)
	return tea.Batch(m.spinner.Tick, m.fetch(m.gen))
}

// Retry re-mounts the page after a failed load. In any other phase it is a
// no-op so a loaded page keeps its focus and arch choices.
func (m *Model) Retry() tea.Cmd {
	if m.phase != failed {
		return nil
	}
	return m.Mount()
}

func (m *Model) fetch(gen int) tea.Cmd {
	src := m.opts.Source
	timeout := m.opts.Timeout
	return func() tea.Msg {
		if src == nil {
			return fetchedMsg{gen: gen, err: release.ErrFetch}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		rel, err := src.Latest(ctx)
		return fetchedMsg{gen: gen, rel: rel, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (interface{}, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case events.Language:
		m.tr = i18n.New(msg.Lang)

	case events.Focus:
		m.focused = true
		m.status = ""

	case events.Blur:
		m.focused = false
		m.status = ""

	case fetchedMsg:
		if msg.gen != m.gen {
			log.Debug("Dropping stale release result (generation %d, current %d)", msg.gen, m.gen)
			return m, nil
		}
		if msg.err != nil {
			log.Error("Failed to fetch latest release: %v", msg.err)
			m.phase = failed
			m.err = msg.err
			break
		}
		m.phase = ready
		m.rel = msg.rel
		m.table = m.resolver.Resolve(msg.rel)
		log.Info("Resolved release %s", m.table.Tag)

	case statusMsg:
		m.status = msg.text
		m.statusKind = msg.kind

	case spinner.TickMsg:
		if m.phase != loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.render()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "r" {
		return m.Retry()
	}

	if m.phase != ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		m.focus = (m.focus - 1 + len(platforms)) % len(platforms)
	case "right", "l":
		m.focus = (m.focus + 1) % len(platforms)
	case "a":
		m.ToggleArch()
	case "c":
		return m.copyLink()
	case "o", "enter":
		return m.openLink()
	case "v":
		return m.open(m.releasesURL())
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd
	}
	return nil
}

// Focused is the platform whose card has the cursor.
func (m *Model) Focused() assets.Platform { return platforms[m.focus] }

// Current is the option shown on p's card.
func (m *Model) Current(p assets.Platform) (assets.DownloadOption, bool) {
	return m.sel.Current(m.table, p)
}

// ToggleArch moves the focused card to the next published architecture.
func (m *Model) ToggleArch() {
	p := m.Focused()
	opts := m.table.For(p)
	if len(opts) < 2 {
		return
	}
	cur, _ := m.sel.Current(m.table, p)
	for i, o := range opts {
		if o.Arch == cur.Arch {
			next := opts[(i+1)%len(opts)]
			m.sel.Select(p, next.Arch)
			return
		}
	}
}

func (m *Model) copyLink() tea.Cmd {
	url, ok := m.sel.PrimaryURL(m.table, m.Focused())
	if !ok {
		return nil
	}
	copyText := m.opts.Copy
	tr := m.tr
	return func() tea.Msg {
		if err := copyText(url); err != nil {
			log.Warn("Clipboard unavailable: %v", err)
			return statusMsg{text: tr.Tf(i18n.DownloadCopyFailed, err), kind: "error"}
		}
		log.Info("Copied %s", url)
		return statusMsg{text: tr.Tf(i18n.DownloadCopied, url), kind: "success"}
	}
}

func (m *Model) openLink() tea.Cmd {
	url, ok := m.sel.PrimaryURL(m.table, m.Focused())
	if !ok {
		return nil
	}
	return m.open(url)
}

func (m *Model) open(url string) tea.Cmd {
	openURL := m.opts.Open
	tr := m.tr
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return statusMsg{text: err.Error(), kind: "error"}
		}
		return statusMsg{text: tr.Tf(i18n.DownloadOpening, url), kind: "info"}
	}
}

func (m *Model) releasesURL() string {
	if m.rel != nil && m.rel.HTMLURL != "" {
		return m.rel.HTMLURL
	}
	return "https://github.com/" + m.opts.Repo + "/releases"
}

func (m *Model) Title() string {
	return m.tr.T(i18n.NavDownload)
}

// HasOpenModal returns true if the module has an open modal/dialog
func (m *Model) HasOpenModal() bool {
	return false
}

var platforms = assets.Platforms()

func platformIndex(p assets.Platform) int {
	for i, v := range platforms {
		if v == p {
			return i
		}
	}
	return 0
}
