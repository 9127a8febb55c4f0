// Package palette implements the ctrl+k command overlay.
package palette

import (
	"strings"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/logger"
	"github.com/alvarorichard/goanime-site/internal/ui/components"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var log = logger.For("palette")

// Action is one named entry of the palette.
type Action struct {
	ID       string
	Name     i18n.Key
	Shortcut rune
	Run      func() tea.Cmd
}

// Closed is emitted whenever the palette hides itself.
type Closed struct{}

// Model is the palette overlay. The zero value is not usable; call New.
type Model struct {
	actions []Action
	input   textinput.Model
	tr      i18n.Translator
	open    bool
	index   int
	width   int
}

// New builds a hidden palette over actions, in declared order.
func New(tr i18n.Translator, actions []Action) *Model {
	ti := textinput.New()
	ti.Prompt = "⌘ "
	ti.CharLimit = 64
	ti.Placeholder = tr.T(i18n.PalettePlaceholder)
	return &Model{actions: actions, input: ti, tr: tr}
}

// SetTranslator switches the language of action names and copy.
func (m *Model) SetTranslator(tr i18n.Translator) {
	m.tr = tr
	m.input.Placeholder = tr.T(i18n.PalettePlaceholder)
	m.index = 0
}

// SetWidth sets the available screen width.
func (m *Model) SetWidth(w int) { m.width = w }

// Open reports whether the overlay is visible.
func (m *Model) Open() bool { return m.open }

// Toggle shows or hides the overlay. Opening starts with an empty query.
func (m *Model) Toggle() tea.Cmd {
	if m.open {
		return m.Close()
	}
	m.open = true
	m.index = 0
	m.input.Reset()
	log.Debug("Command palette opened")
	return m.input.Focus()
}

// Close hides the overlay.
func (m *Model) Close() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	m.input.Blur()
	m.input.Reset()
	m.index = 0
	return func() tea.Msg { return Closed{} }
}

// Query is the current filter text.
func (m *Model) Query() string { return m.input.Value() }

// Index is the highlighted row within Filtered.
func (m *Model) Index() int { return m.index }

// Filtered returns the actions whose localized name contains the query,
// case-insensitively, in declared order.
func (m *Model) Filtered() []Action {
	q := strings.ToLower(m.input.Value())
	out := make([]Action, 0, len(m.actions))
	for _, a := range m.actions {
		if strings.Contains(strings.ToLower(m.tr.T(a.Name)), q) {
			out = append(out, a)
		}
	}
	return out
}

// Update handles keys while the overlay is open. Closed palettes ignore
// everything.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	n := len(m.Filtered())
	span := n
	if span < 1 {
		span = 1
	}

	switch key.String() {
	case "esc":
		return m, m.Close()
	case "down":
		m.index = (m.index + 1) % span
		return m, nil
	case "up":
		m.index = (m.index - 1 + span) % span
		return m, nil
	case "enter":
		if n == 0 {
			return m, nil
		}
		return m, m.invoke(m.Filtered()[m.index])
	}

	if a, ok := m.shortcut(key); ok {
		return m, m.invoke(a)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.index = 0
	}
	return m, cmd
}

// shortcut matches ctrl+<letter> or alt+<letter> against every action,
// regardless of the current filter.
func (m *Model) shortcut(key tea.KeyMsg) (Action, bool) {
	s := key.String()
	var letter string
	switch {
	case strings.HasPrefix(s, "ctrl+"):
		letter = strings.TrimPrefix(s, "ctrl+")
	case key.Alt && len(key.Runes) == 1:
		letter = string(key.Runes)
	default:
		return Action{}, false
	}
	if len([]rune(letter)) != 1 {
		return Action{}, false
	}
	for _, a := range m.actions {
		if a.Shortcut != 0 && strings.EqualFold(string(a.Shortcut), letter) {
			return a, true
		}
	}
	return Action{}, false
}

func (m *Model) invoke(a Action) tea.Cmd {
	log.Info("Palette action: %s", a.ID)
	closeCmd := m.Close()
	if a.Run == nil {
		return closeCmd
	}
	return tea.Batch(closeCmd, a.Run())
}

// View renders the overlay box, or "" when closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	styles := components.NewBaseStyles()

	width := m.width - 10
	if width > 64 {
		width = 64
	}
	if width < 36 {
		width = 36
	}

	filtered := m.Filtered()
	items := make([]string, len(filtered))
	hints := make([]string, len(filtered))
	for i, a := range filtered {
		items[i] = m.tr.T(a.Name)
		if a.Shortcut != 0 {
			hints[i] = styles.Muted().Render("Ctrl+" + strings.ToUpper(string(a.Shortcut)))
		}
	}

	list := &components.ListCard{
		Title:        m.input.View(),
		Items:        items,
		Hints:        hints,
		SelectedItem: m.index,
		Empty:        m.tr.T(i18n.PaletteEmpty),
		Width:        width,
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		list.Render(),
		styles.Hint(" "+m.tr.T(i18n.PaletteHint)),
	)
}
