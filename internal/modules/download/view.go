package download

import (
	"fmt"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/assets"
	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/alvarorichard/goanime-site/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type platformCopy struct {
	icon                string
	title, desc, button i18n.Key
}

var cardCopy = map[assets.Platform]platformCopy{
	assets.Mac:     {"", i18n.DownloadMacTitle, i18n.DownloadMacDesc, i18n.DownloadMacButton},
	assets.Linux:   {"🐧", i18n.DownloadLinuxTitle, i18n.DownloadLinuxDesc, i18n.DownloadLinuxButton},
	assets.Windows: {"⊞", i18n.DownloadWindowsTitle, i18n.DownloadWindowsDesc, i18n.DownloadWindowsButton},
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.tr.T(i18n.DownloadLoading)
	}
	return m.vp.View()
}

func (m *Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// render rebuilds the scrollable page body.
func (m *Model) render() {
	width := m.contentWidth()
	m.vp.Width = width
	h := m.height - 12
	if h < 5 {
		h = 5
	}
	m.vp.Height = h

	parts := []string{m.renderHeader(width), ""}
	switch m.phase {
	case idle, loading:
		parts = append(parts, m.renderLoading(width))
	case failed:
		parts = append(parts, m.renderError(width))
	case ready:
		parts = append(parts, m.renderCards(width))
	}
	if m.status != "" {
		status := &components.StatusCard{Type: m.statusKind, Message: m.status, Width: width}
		parts = append(parts, "", status.Render())
	}
	parts = append(parts,
		"",
		m.renderAlternatives(width),
		"",
		m.renderSteps(width),
	)

	offset := m.vp.YOffset
	m.vp.SetContent(strings.Join(parts, "\n"))
	m.vp.SetYOffset(offset)
}

func (m *Model) renderHeader(width int) string {
	styles := components.NewBaseStyles()
	lines := []string{
		styles.Badge("✦ "+m.tr.T(i18n.DownloadBadge), styles.Theme.Primary),
		styles.Gradient(m.tr.T(i18n.DownloadTitle)),
		lipgloss.NewStyle().Width(width).Foreground(styles.Theme.Muted).Render(m.tr.T(i18n.DownloadSubtitle)),
	}
	if m.phase == ready && m.table.Tag != "" {
		version := fmt.Sprintf("%s %s", m.tr.T(i18n.DownloadVersion),
			lipgloss.NewStyle().Bold(true).Foreground(styles.Theme.Primary).Render(release.Canonical(m.table.Tag)))
		if m.table.Prerelease {
			version += "  " + styles.Warning().Render(m.tr.T(i18n.DownloadPrerelease))
		}
		if m.rel != nil && !m.rel.PublishedAt.IsZero() {
			version += "  " + styles.Muted().Render(m.rel.PublishedAt.Format("2006-01-02"))
		}
		lines = append(lines, "", version)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderLoading(width int) string {
	styles := components.NewBaseStyles()
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Padding(2, 0).Render(
		m.spinner.View() + " " + styles.Muted().Render(m.tr.T(i18n.DownloadLoading)),
	)
}

func (m *Model) renderError(width int) string {
	styles := components.NewBaseStyles()
	lines := []string{
		styles.Error().Render("✗ " + m.tr.T(i18n.DownloadError)),
	}
	if m.err != nil {
		lines = append(lines, styles.Muted().Render(m.err.Error()))
	}
	lines = append(lines, "", styles.KeyBinding("[r]", m.tr.T(i18n.DownloadRetry)))

	boxWidth := width / 2
	if boxWidth < 40 {
		boxWidth = 40
	}
	box := styles.Box(boxWidth, 0, styles.Theme.Error).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}

func (m *Model) renderCards(width int) string {
	styles := components.NewBaseStyles()
	grid := components.NewLayout(width+4, 0).Grid(34, 3, 2)

	detected, hasDetected := m.sel.DetectedPlatform()
	for i, p := range platforms {
		grid.Items = append(grid.Items, m.renderCard(p, grid.ColumnWidth(), i == m.focus, hasDetected && p == detected))
	}

	lines := []string{grid.Render(), ""}
	lines = append(lines, lipgloss.NewStyle().Width(width).Foreground(styles.Theme.Muted).Render(m.tr.T(i18n.DownloadInstructions)))
	if m.table.ChecksumURL != "" {
		lines = append(lines, styles.Label().Render(m.tr.T(i18n.DownloadChecksum)+": ")+styles.Muted().Render(m.table.ChecksumURL))
	}
	lines = append(lines, "", styles.Hint(m.tr.T(i18n.DownloadControls)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderCard(p assets.Platform, width int, focused, detected bool) string {
	c := cardCopy[p]
	card := &components.PlatformCard{
		Icon:    c.icon,
		Title:   m.tr.T(c.title),
		Desc:    m.tr.T(c.desc),
		Width:   width,
		Focused: focused,
	}
	if detected {
		card.Detected = m.tr.T(i18n.DownloadDetected)
	}

	opt, ok := m.sel.Current(m.table, p)
	if !ok {
		card.Disabled = true
		card.Button = m.tr.T(i18n.DownloadUnavailable)
		return card.Render()
	}

	card.Rows = [][2]string{
		{m.tr.T(i18n.DownloadArch), archLabel(m.table.For(p), opt.Arch)},
		{m.tr.T(i18n.DownloadFile), assets.PrimaryName(opt)},
		{m.tr.T(i18n.DownloadSize), sizeLabel(assets.PrimarySize(opt))},
	}
	card.Button = "⇩ " + m.tr.T(c.button)
	card.Link = assets.PrimaryURL(opt)
	return card.Render()
}

// archLabel lists the published architectures with the chosen one bracketed.
func archLabel(opts []assets.DownloadOption, chosen assets.Arch) string {
	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Arch == chosen {
			labels = append(labels, "["+string(o.Arch)+"]")
		} else {
			labels = append(labels, string(o.Arch))
		}
	}
	return strings.Join(labels, " ")
}

func sizeLabel(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

func (m *Model) renderAlternatives(width int) string {
	styles := components.NewBaseStyles()
	grid := components.NewLayout(width+4, 0).Grid(40, 2, 2)

	repoURL := "https://github.com/" + m.opts.Repo
	github := &components.InfoCard{
		Title: m.tr.T(i18n.DownloadGithubTitle),
		Lines: []string{
			styles.Muted().Render(m.tr.T(i18n.DownloadGithubDesc)),
			"",
			styles.KeyBinding("[v]", m.tr.T(i18n.DownloadGithubButton)),
			styles.Muted().Render(m.releasesURL()),
		},
		Width: grid.ColumnWidth(),
	}
	source := &components.InfoCard{
		Title: m.tr.T(i18n.DownloadSourceTitle),
		Lines: []string{
			styles.Muted().Render(m.tr.T(i18n.DownloadSourceDesc)),
			"",
			styles.Command("git clone " + repoURL + ".git"),
			styles.Muted().Render(m.tr.T(i18n.DownloadSourceButton) + ": " + repoURL),
		},
		Width: grid.ColumnWidth(),
	}
	grid.Items = []string{github.Render(), source.Render()}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Subtitle().Render(m.tr.T(i18n.DownloadAltTitle)),
		styles.Muted().Render(" "+m.tr.T(i18n.DownloadAltSubtitle)),
		"",
		grid.Render(),
	)
}

func (m *Model) renderSteps(width int) string {
	styles := components.NewBaseStyles()
	number := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Theme.Background).
		Background(styles.Theme.Primary).
		Padding(0, 1)

	type step struct {
		title, desc i18n.Key
		code        []string
	}
	steps := []step{
		{i18n.DownloadStep1Title, i18n.DownloadStep1Desc, nil},
		{i18n.DownloadStep2Title, i18n.DownloadStep2Desc, []string{m.tr.T(i18n.DownloadStep2Command)}},
		{i18n.DownloadStep3Title, i18n.DownloadStep3Desc, []string{m.tr.T(i18n.DownloadStep3Command)}},
	}

	lines := []string{
		styles.Badge(m.tr.T(i18n.DownloadStepsBadge), styles.Theme.Secondary),
		styles.Gradient(m.tr.T(i18n.DownloadStepsTitle)),
		styles.Muted().Render(m.tr.T(i18n.DownloadStepsSubtitle)),
		"",
	}
	for i, s := range steps {
		lines = append(lines,
			number.Render(fmt.Sprintf("%d", i+1))+" "+lipgloss.NewStyle().Bold(true).Render(m.tr.T(s.title)),
			"    "+lipgloss.NewStyle().Width(width-4).Foreground(styles.Theme.Muted).Render(m.tr.T(s.desc)),
		)
		for _, c := range s.code {
			lines = append(lines, "    "+styles.Command(c))
		}
		lines = append(lines, "")
	}
	lines = append(lines,
		styles.Muted().Render("$ ")+m.tr.T(i18n.DownloadStep3Command),
		styles.Info().Render(m.tr.T(i18n.DownloadStarting)),
		styles.Muted().Render(m.tr.T(i18n.DownloadPrompt)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
