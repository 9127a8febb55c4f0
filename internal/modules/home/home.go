// Package home renders the landing page: hero, features, installation,
// usage, call to action and footer.
package home

import (
	"fmt"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/ui/components"
	"github.com/alvarorichard/goanime-site/internal/ui/events"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var log = logger.For("home")

// Section is an anchor on the landing page.
type Section int

const (
	Hero Section = iota
	Features
	Installation
	Usage
	CTA
	sectionCount
)

// Jump asks the page to scroll to a section.
type Jump struct {
	Section Section
}

const (
	RepoURL        = "https://github.com/alvarorichard/GoAnime"
	Author         = "alvarorichard"
	InstallCommand = "go install github.com/alvarorichard/Goanime/cmd/goanime@latest"
)

type method struct {
	title, desc i18n.Key
	code        []string
}

var methods = []method{
	{i18n.InstallUniversalTitle, i18n.InstallUniversalDesc, []string{InstallCommand}},
	{i18n.InstallManualTitle, i18n.InstallManualDesc, []string{
		"git clone https://github.com/alvarorichard/GoAnime.git",
		"cd GoAnime",
		"sudo bash install.sh",
	}},
	{i18n.InstallArchTitle, i18n.InstallArchDesc, []string{"paru -S goanime", "yay -S goanime"}},
	{i18n.InstallNixTitle, i18n.InstallNixDesc, []string{"nix github:alvarorichard/GoAnime"}},
}

type feature struct {
	icon        string
	title, desc i18n.Key
}

var features = []feature{
	{"⌨", i18n.FeatureCLITitle, i18n.FeatureCLIDesc},
	{"▶", i18n.FeaturePlaybackTitle, i18n.FeaturePlaybackDesc},
	{"⚡", i18n.FeatureFastTitle, i18n.FeatureFastDesc},
	{"◎", i18n.FeatureSourcesTitle, i18n.FeatureSourcesDesc},
	{"♥", i18n.FeatureOpenSourceTitle, i18n.FeatureOpenSourceDesc},
	{"⇩", i18n.FeatureDownloadTitle, i18n.FeatureDownloadDesc},
}

type step struct {
	title, desc i18n.Key
	code        []string
}

var steps = []step{
	{i18n.UsageStep1Title, i18n.UsageStep1Desc, []string{"go-anime    # Linux/macOS", "goanime     # Windows"}},
	{i18n.UsageStep2Title, i18n.UsageStep2Desc, []string{`goanime "demon slayer"`}},
	{i18n.UsageStep3Title, i18n.UsageStep3Desc, nil},
	{i18n.UsageStep4Title, i18n.UsageStep4Desc, nil},
	{i18n.UsageStep5Title, i18n.UsageStep5Desc, nil},
}

// Model is the landing page.
type Model struct {
	tr       i18n.Translator
	width    int
	height   int
	focused  bool
	vp       viewport.Model
	anchors  [sectionCount]int
	status   string
	copyText func(string) error
}

// New creates the landing page in the given language.
func New(tr i18n.Translator) *Model {
	m := &Model{
		tr:       tr,
		vp:       viewport.New(0, 0),
		copyText: clipboard.WriteAll,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (interface{}, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
	case events.Language:
		m.tr = i18n.New(msg.Lang)
		m.refresh()
	case events.Focus:
		m.focused = true
		m.status = ""
	case events.Blur:
		m.focused = false
		m.status = ""
	case Jump:
		m.JumpTo(msg.Section)
	case tea.KeyMsg:
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			m.JumpTo(Section(msg.Runes[0] - '1'))
			return m, nil
		case "home":
			m.vp.GotoTop()
			return m, nil
		case "end":
			m.vp.GotoBottom()
			return m, nil
		case "c":
			if err := m.copyText(InstallCommand); err != nil {
				log.Warn("Clipboard unavailable: %v", err)
				m.status = m.tr.Tf(i18n.DownloadCopyFailed, err)
			} else {
				m.status = m.tr.Tf(i18n.DownloadCopied, InstallCommand)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

// JumpTo scrolls so that s is at the top of the page.
func (m *Model) JumpTo(s Section) {
	if s < 0 || s >= sectionCount {
		return
	}
	log.Debug("Jump to section %d (line %d)", s, m.anchors[s])
	m.vp.SetYOffset(m.anchors[s])
}

// Offset is the first visible line.
func (m *Model) Offset() int { return m.vp.YOffset }

// Anchor is the line a section starts at.
func (m *Model) Anchor(s Section) int {
	if s < 0 || s >= sectionCount {
		return 0
	}
	return m.anchors[s]
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.tr.T(i18n.DownloadLoading)
	}
	styles := components.NewBaseStyles()
	out := m.vp.View()
	if m.status != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, styles.Success().Render(m.status))
	}
	return out
}

func (m *Model) Title() string {
	return m.tr.T(i18n.NavHome)
}

// HasOpenModal returns true if the module has an open modal/dialog
func (m *Model) HasOpenModal() bool {
	return false
}

func (m *Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// refresh re-renders every section and records where each one starts.
func (m *Model) refresh() {
	offset := m.vp.YOffset
	width := m.contentWidth()

	m.vp.Width = width
	h := m.height - 12 // tabs, footer, hint and status line
	if h < 5 {
		h = 5
	}
	m.vp.Height = h

	sections := [sectionCount]string{
		m.renderHero(width),
		m.renderFeatures(width),
		m.renderInstallation(width),
		m.renderUsage(width),
		m.renderCTA(width),
	}

	line := 0
	parts := make([]string, 0, sectionCount+1)
	for i, s := range sections {
		m.anchors[i] = line
		line += lipgloss.Height(s) + 1
		parts = append(parts, s, "")
	}
	parts = append(parts, m.renderFooter(width))

	m.vp.SetContent(strings.Join(parts, "\n"))
	m.vp.SetYOffset(offset)
}

func (m *Model) header(badge, title, subtitle i18n.Key, width int) string {
	styles := components.NewBaseStyles()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(styles.Badge(m.tr.T(badge), styles.Theme.Primary)),
		center.Render(styles.Gradient(m.tr.T(title))),
		center.Render(styles.Muted().Render(m.tr.T(subtitle))),
		"",
	)
}

func (m *Model) renderHero(width int) string {
	styles := components.NewBaseStyles()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	logo := styles.Gradient("G o A n i m e")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Foreground(styles.Theme.Background).Background(styles.Theme.Primary).Padding(0, 2).Render(m.tr.T(i18n.HeroInstall)),
		"  ",
		lipgloss.NewStyle().Foreground(styles.Theme.Foreground).Border(lipgloss.NormalBorder(), false, false, true, false).Render(m.tr.T(i18n.HeroGithub)+" "+RepoURL),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		center.Render(logo),
		center.Render(styles.Subtitle().Render(m.tr.T(i18n.HeroTagline))),
		"",
		center.Render(lipgloss.NewStyle().Width(width*3/4).Align(lipgloss.Center).Foreground(styles.Theme.Muted).Render(m.tr.T(i18n.HeroDescription))),
		"",
		center.Render(buttons),
		"",
		center.Render(styles.Hint(fmt.Sprintf("%s Ctrl+K", m.tr.T(i18n.NavPress)))),
	)
}

func (m *Model) renderFeatures(width int) string {
	grid := components.NewLayout(width+4, 0).Grid(36, 3, 2)
	for _, f := range features {
		card := &components.InfoCard{
			Title: f.icon + "  " + m.tr.T(f.title),
			Lines: []string{m.tr.T(f.desc)},
			Width: grid.ColumnWidth(),
		}
		grid.Items = append(grid.Items, card.Render())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(i18n.FeaturesBadge, i18n.FeaturesTitle, i18n.FeaturesSubtitle, width),
		grid.Render(),
	)
}

func (m *Model) renderInstallation(width int) string {
	styles := components.NewBaseStyles()
	grid := components.NewLayout(width+4, 0).Grid(48, 2, 2)
	for _, meth := range methods {
		lines := []string{styles.Muted().Render(m.tr.T(meth.desc)), ""}
		for _, c := range meth.code {
			lines = append(lines, styles.Command(c))
		}
		card := &components.InfoCard{
			Title: m.tr.T(meth.title),
			Lines: lines,
			Width: grid.ColumnWidth(),
		}
		grid.Items = append(grid.Items, card.Render())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(i18n.InstallBadge, i18n.InstallTitle, i18n.InstallSubtitle, width),
		grid.Render(),
		styles.Hint(fmt.Sprintf("%s: %s#installation", m.tr.T(i18n.InstallLearnMore), RepoURL)),
	)
}

func (m *Model) renderUsage(width int) string {
	styles := components.NewBaseStyles()
	number := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Theme.Background).
		Background(styles.Theme.Secondary).
		Padding(0, 1)

	lines := []string{m.header(i18n.UsageBadge, i18n.UsageTitle, i18n.UsageSubtitle, width)}
	for i, s := range steps {
		title := number.Render(fmt.Sprintf("%d", i+1)) + " " + lipgloss.NewStyle().Bold(true).Render(m.tr.T(s.title))
		lines = append(lines, title, "    "+styles.Muted().Render(m.tr.T(s.desc)))
		for _, c := range s.code {
			lines = append(lines, "    "+styles.Command(c))
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderCTA(width int) string {
	styles := components.NewBaseStyles()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(i18n.CTABadge, i18n.CTATitle, i18n.CTASubtitle, width),
		center.Render(styles.Command(InstallCommand)),
		center.Render(styles.Hint("[c] ⧉")),
	)
}

func (m *Model) renderFooter(width int) string {
	styles := components.NewBaseStyles()
	left := styles.Muted().Render(fmt.Sprintf("%s %s", m.tr.T(i18n.FooterDeveloped), Author))
	right := styles.Muted().Render(RepoURL)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Theme.Border).
		Render(left + strings.Repeat(" ", gap) + right)
}
