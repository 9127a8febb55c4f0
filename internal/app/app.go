package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/alvarorichard/goanime-site/internal/browser"
	"github.com/alvarorichard/goanime-site/internal/config"
	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/modules/download"
	"github.com/alvarorichard/goanime-site/internal/modules/home"
	"github.com/alvarorichard/goanime-site/internal/palette"
	"github.com/alvarorichard/goanime-site/internal/selection"
	"github.com/alvarorichard/goanime-site/internal/ui/components"
	"github.com/alvarorichard/goanime-site/internal/ui/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var log = logger.For("app")

// Module represents a tab in the application
type Module interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (interface{}, tea.Cmd)
	View() string
	Title() string
	HasOpenModal() bool
}

const (
	tabHome = iota
	tabDownload
)

// Model represents the main application state
type Model struct {
	config        *config.Config
	version       string
	tr            i18n.Translator
	home          *home.Model
	download      *download.Model
	palette       *palette.Model
	modules       []Module
	activeModule  int
	width         int
	height        int
	showHelp      bool
	showLogs      bool
	moduleFocused bool
	lastUpdate    time.Time
	quitting      bool
	logLines      []string
	logLoadErr    error
	maxLogLines   int
	logPath       string
	open          func(string) error
}

// Options carries what the pages need besides the config.
type Options struct {
	Source   download.Source
	Detector selection.Detector
	Open     func(string) error
}

// New creates a new application model
func New(cfg *config.Config, version string, opts Options) *Model {
	if opts.Open == nil {
		opts.Open = browser.Open
	}
	lang := i18n.Default
	if cfg != nil {
		lang = cfg.Lang()
	}

	m := &Model{
		config:      cfg,
		version:     version,
		tr:          i18n.New(lang),
		lastUpdate:  time.Now(),
		maxLogLines: 200,
		logPath:     logger.GetLogPath(),
		open:        opts.Open,
	}

	dl := download.Options{
		Source:   opts.Source,
		Detector: opts.Detector,
		Open:     opts.Open,
	}
	if cfg != nil {
		dl.Repo = cfg.Release.Repo
		dl.DownloadBase = cfg.Release.DownloadBase
		dl.Timeout = cfg.Timeout()
	}

	m.home = home.New(m.tr)
	m.download = download.New(m.tr, dl)
	m.modules = []Module{m.home, m.download}
	m.palette = palette.New(m.tr, m.actions())

	return m
}

func (m *Model) actions() []palette.Action {
	return []palette.Action{
		{ID: "github", Name: i18n.PaletteGithub, Shortcut: 'g', Run: m.openRepo},
		{ID: "features", Name: i18n.PaletteFeatures, Shortcut: 'f', Run: func() tea.Cmd { return m.jump(home.Features) }},
		{ID: "installation", Name: i18n.PaletteInstallation, Shortcut: 'i', Run: func() tea.Cmd { return m.jump(home.Installation) }},
		{ID: "usage", Name: i18n.PaletteUsage, Shortcut: 'u', Run: func() tea.Cmd { return m.jump(home.Usage) }},
		{ID: "download", Name: i18n.PaletteDownload, Shortcut: 'd', Run: func() tea.Cmd { return tea.Batch(m.switchTo(tabDownload)...) }},
		{ID: "language", Name: i18n.PaletteLanguage, Shortcut: 'l', Run: m.cycleLanguage},
	}
}

// Init initializes the application
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{doTick()}
	if len(m.modules) > 0 {
		cmds = append(cmds, m.modules[0].Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(msg.Width)

		// Forward RAW size to modules (they handle their own layout)
		cmds = append(cmds, m.broadcast(msg)...)

	case tea.KeyMsg:
		return m, tea.Batch(m.handleKey(msg)...)

	case tickMsg:
		m.lastUpdate = time.Now()
		if m.showLogs {
			m.refreshLogs()
		}
		cmds = append(cmds, doTick())

	default:
		// Results arrive whichever page is showing, so every module sees them
		if m.palette.Open() {
			_, cmd := m.palette.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.broadcast(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd
	key := msg.String()
	// Normalize to lowercase for case-insensitive commands
	keyLower := strings.ToLower(key)

	switch key {
	case "ctrl+c":
		m.quitting = true
		return []tea.Cmd{tea.Quit}
	case "ctrl+k":
		m.showHelp = false
		m.showLogs = false
		return []tea.Cmd{m.palette.Toggle()}
	}

	// The palette swallows every key while open
	if m.palette.Open() {
		_, cmd := m.palette.Update(msg)
		return []tea.Cmd{cmd}
	}

	// Handle help/logs screens first
	if m.showHelp {
		switch keyLower {
		case "esc", "q":
			m.showHelp = false
		}
		return nil
	}

	if m.showLogs {
		if keyLower == "esc" || keyLower == "q" || keyLower == "l" {
			m.showLogs = false
		}
		return nil
	}

	// If module is focused, it gets ALL keys
	if m.moduleFocused {
		if cmd := m.send(m.activeModule, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

		// If ESC was pressed and module doesn't have open modals, unfocus
		if key == "esc" && !m.modules[m.activeModule].HasOpenModal() {
			m.moduleFocused = false
			if cmd := m.send(m.activeModule, events.Blur{}); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return cmds
	}

	// Global commands (only when NOT focused on a module)
	switch keyLower {
	case "q":
		m.quitting = true
		return []tea.Cmd{tea.Quit}
	case "?":
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.showLogs = false
		}
		return nil
	case "l":
		m.showLogs = true
		m.refreshLogs()
		return nil
	case "g":
		return []tea.Cmd{m.cycleLanguage()}
	case "r":
		if m.activeModule == tabDownload {
			return []tea.Cmd{m.download.Retry()}
		}
	}

	if len(m.modules) == 0 {
		return nil
	}

	switch key {
	case "tab", "right":
		cmds = append(cmds, m.switchTo((m.activeModule+1)%len(m.modules))...)
	case "shift+tab", "left":
		cmds = append(cmds, m.switchTo((m.activeModule-1+len(m.modules))%len(m.modules))...)
	case "home":
		cmds = append(cmds, m.switchTo(0)...)
	case "end":
		cmds = append(cmds, m.switchTo(len(m.modules)-1)...)
	case "enter":
		m.moduleFocused = true
		if cmd := m.send(m.activeModule, events.Focus{}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m *Model) send(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(m.modules) {
		return nil
	}
	_, cmd := m.modules[i].Update(msg)
	return cmd
}

func (m *Model) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.modules {
		if cmd := m.send(i, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// switchTo makes tab i active. A focused page loses focus when the active
// tab changes.
func (m *Model) switchTo(i int) []tea.Cmd {
	var cmds []tea.Cmd
	if i != m.activeModule && m.moduleFocused {
		m.moduleFocused = false
		if cmd := m.send(m.activeModule, events.Blur{}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.activeModule = i
	if init := m.modules[i].Init(); init != nil {
		cmds = append(cmds, init)
	}
	log.Debug("Switched to tab %d (%s)", i, m.modules[i].Title())
	return cmds
}

func (m *Model) jump(s home.Section) tea.Cmd {
	cmds := m.switchTo(tabHome)
	if cmd := m.send(tabHome, home.Jump{Section: s}); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) openRepo() tea.Cmd {
	open := m.open
	return func() tea.Msg {
		if err := open(home.RepoURL); err != nil {
			log.Warn("Failed to open %s: %v", home.RepoURL, err)
		}
		return nil
	}
}

// cycleLanguage moves to the next language, persists it and re-renders
// every page.
func (m *Model) cycleLanguage() tea.Cmd {
	next := m.tr.Lang.Next()
	m.tr = i18n.New(next)
	m.palette.SetTranslator(m.tr)
	if m.config != nil {
		if err := m.config.SetLanguage(next); err != nil {
			log.Warn("Failed to persist language %s: %v", next, err)
		}
	}
	log.Info("Language switched to %s", next)
	return tea.Batch(m.broadcast(events.Language{Lang: next})...)
}

// Language is the current UI language.
func (m *Model) Language() i18n.Language { return m.tr.Lang }

// View renders the application
func (m *Model) View() string {
	if m.quitting {
		return m.tr.T(i18n.ShellGoodbye) + "\n"
	}

	// Create layout manager to calculate available space
	layout := components.NewLayout(m.width, m.height)
	if !m.moduleFocused && !m.showLogs {
		layout = layout.WithHint()
	}

	// Handle overlays (they take full screen)
	if m.palette.Open() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.palette.View())
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLogs {
		return m.renderLogOverlay(layout)
	}

	tabs := m.renderTabs()
	footer := m.renderFooter()

	moduleContent := ""
	if m.activeModule < len(m.modules) {
		moduleContent = m.modules[m.activeModule].View()
	}

	finalContent := moduleContent
	if !m.moduleFocused {
		hint := m.renderHint(layout.ContentWidth)
		finalContent = lipgloss.JoinVertical(lipgloss.Top, hint, "", moduleContent)
	}

	// Constrain content to prevent overflow
	constrainedContent := lipgloss.NewStyle().
		Width(layout.ContentWidth).
		MaxHeight(layout.ContentHeight).
		Padding(0, 2).
		Render(components.Clip(finalContent, layout.ContentHeight))

	return lipgloss.JoinVertical(
		lipgloss.Top,
		tabs,
		constrainedContent,
		footer,
	)
}

func (m *Model) renderTabs() string {
	styles := components.NewBaseStyles()

	numTabs := len(m.modules)
	if numTabs == 0 {
		return ""
	}

	// Reserve space for the brand, borders and padding in the tab bar
	brand := styles.Gradient("GoAnime")
	availableWidth := m.width - 8 - lipgloss.Width(brand) - 2
	tabWidth := (availableWidth / numTabs) - 2
	if tabWidth < 12 {
		tabWidth = 12
	}
	if tabWidth > 28 {
		tabWidth = 28
	}

	tabs := []string{brand, "  "}

	// All tabs have SAME dimensions - only colors change
	for i, module := range m.modules {
		label := module.Title()

		var style lipgloss.Style
		if i == m.activeModule {
			if m.moduleFocused {
				label = "◉ " + label
				style = lipgloss.NewStyle().
					Width(tabWidth).
					Bold(true).
					Foreground(styles.Theme.Background).
					Background(styles.Theme.Primary).
					Padding(0, 1).
					Align(lipgloss.Center)
			} else {
				label = "◎ " + label
				style = lipgloss.NewStyle().
					Width(tabWidth).
					Bold(true).
					Foreground(styles.Theme.Primary).
					Background(lipgloss.Color("#0F1F1D")).
					Padding(0, 1).
					Align(lipgloss.Center)
			}
		} else {
			style = lipgloss.NewStyle().
				Width(tabWidth).
				Foreground(styles.Theme.Muted).
				Background(styles.Theme.Background).
				Padding(0, 1).
				Align(lipgloss.Center)
		}

		tabs = append(tabs, style.Render(components.TruncateString(label, tabWidth-2)))
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return lipgloss.NewStyle().
		Width(m.width).
		Background(styles.Theme.Background).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.Theme.Primary).
		Padding(1, 2).
		Render(tabRow)
}

func (m *Model) renderFooter() string {
	styles := components.NewBaseStyles()

	footerStyle := lipgloss.NewStyle().
		Width(m.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Theme.Primary).
		Background(styles.Theme.Background).
		Foreground(styles.Theme.Muted).
		Padding(0, 2)

	versionStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Primary).
		Bold(true)

	shortcutsStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Foreground)

	langStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Secondary).
		Bold(true)

	focusIndicator := ""
	if m.moduleFocused {
		focusIndicator = lipgloss.NewStyle().
			Foreground(styles.Theme.Primary).
			Bold(true).
			Render(m.tr.T(i18n.ShellFocused))
	}

	info := versionStyle.Render(fmt.Sprintf("GoAnime Site v%s", m.version)) + focusIndicator
	left := fmt.Sprintf("%s  │  %s", info, shortcutsStyle.Render(m.tr.T(i18n.FooterShortcuts)))
	right := langStyle.Render(fmt.Sprintf("🌐 %s", strings.ToUpper(string(m.tr.Lang)))) +
		"  " + styles.Muted().Render(m.lastUpdate.Format("15:04:05"))

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	spacer := m.width - leftLen - rightLen - 6
	if spacer < 0 {
		spacer = 0
	}

	return footerStyle.Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			left,
			lipgloss.NewStyle().Width(spacer).Render(""),
			right,
		),
	)
}

func (m *Model) refreshLogs() {
	path := m.logPath
	if path == "" {
		path = logger.GetLogPath()
		m.logPath = path
	}

	lines, err := logger.Tail(path, m.maxLogLines)
	if err != nil {
		m.logLoadErr = err
		m.logLines = nil
		return
	}
	m.logLoadErr = nil
	m.logLines = lines
}

func (m *Model) renderLogOverlay(layout *components.Layout) string {
	boxWidth := layout.ContentWidth - 6
	if boxWidth > 120 {
		boxWidth = 120
	}
	if boxWidth < 60 {
		boxWidth = 60
	}

	styles := components.NewBaseStyles()

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Theme.Primary)

	infoStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Muted)

	contentStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Foreground)

	var builder strings.Builder
	builder.WriteString(headerStyle.Render("📋 " + m.tr.T(i18n.LogTitle)))
	builder.WriteString("\n")
	builder.WriteString(infoStyle.Render(m.logPath))
	builder.WriteString("\n")
	builder.WriteString(infoStyle.Render(m.tr.T(i18n.LogClose)))
	builder.WriteString("\n\n")

	if m.logLoadErr != nil {
		builder.WriteString(lipgloss.NewStyle().Foreground(styles.Theme.Error).Render(
			m.tr.Tf(i18n.LogError, m.logLoadErr),
		))
		builder.WriteString("\n")
	} else if len(m.logLines) == 0 {
		builder.WriteString(infoStyle.Render(m.tr.T(i18n.LogEmpty)))
		builder.WriteString("\n")
	} else {
		for _, line := range m.logLines {
			truncated := components.TruncateString(line, boxWidth-4)
			builder.WriteString(contentStyle.Render(truncated))
			builder.WriteString("\n")
		}
	}

	maxHeight := layout.ContentHeight - 6
	if maxHeight < 12 {
		maxHeight = 12
	}

	box := lipgloss.NewStyle().
		Width(boxWidth).
		MaxHeight(maxHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Theme.Border).
		Padding(1, 2).
		Render(components.Clip(builder.String(), maxHeight-4))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m *Model) renderHint(width int) string {
	styles := components.NewBaseStyles()

	hintStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Highlight).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Theme.Highlight)

	hint := hintStyle.Render("⏎  " + m.tr.T(i18n.ShellFocusHint))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(hint)
}

func (m *Model) renderHelp() string {
	styles := components.NewBaseStyles()

	width := m.width - 10
	if width < 40 {
		width = 40
	}
	boxStyle := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Theme.Primary).
		Padding(2, 4)

	sectionStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Secondary).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Primary).
		Bold(true).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.Theme.Foreground)

	row := func(key string, desc i18n.Key) string {
		return "  " + keyStyle.Render(key) + descStyle.Render(m.tr.T(desc))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Gradient("⌘ "+m.tr.T(i18n.HelpTitle)),
		"",
		sectionStyle.Render(m.tr.T(i18n.HelpNavigation)),
		row("Tab / Shift+Tab", i18n.HelpSwitch),
		row("Enter", i18n.HelpFocus),
		row("Esc", i18n.HelpBack),
		"",
		sectionStyle.Render(m.tr.T(i18n.HelpCommands)),
		row("Ctrl+K", i18n.HelpPalette),
		row("g", i18n.HelpLanguage),
		row("?", i18n.HelpToggle),
		row("l", i18n.HelpLogs),
		row("q / Ctrl+C", i18n.HelpQuit),
		"",
		sectionStyle.Render(m.tr.T(i18n.HelpPages)),
		descStyle.Render("  "+m.tr.T(i18n.HelpPagesDesc)),
		"",
		styles.Muted().Render(m.tr.T(i18n.HelpClose)),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(content),
	)
}

// tickMsg is sent every second to update the display
type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
