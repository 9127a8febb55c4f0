package palette

import (
	"strings"
	"testing"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
)

type ranMsg string

func testActions(ran *[]string) []Action {
	mk := func(id string, name i18n.Key, sc rune) Action {
		return Action{ID: id, Name: name, Shortcut: sc, Run: func() tea.Cmd {
			*ran = append(*ran, id)
			return func() tea.Msg { return ranMsg(id) }
		}}
	}
	return []Action{
		mk("github", i18n.PaletteGithub, 'G'),
		mk("features", i18n.PaletteFeatures, 'F'),
		mk("installation", i18n.PaletteInstallation, 'I'),
		mk("usage", i18n.PaletteUsage, 'U'),
	}
}

func openPalette(t *testing.T, lang i18n.Language) (*Model, *[]string) {
	t.Helper()
	ran := &[]string{}
	m := New(i18n.New(lang), testActions(ran))
	m.Toggle()
	if !m.Open() {
		t.Fatal("palette did not open")
	}
	return m, ran
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func ids(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.ID
	}
	return out
}

func TestHiddenByDefault(t *testing.T) {
	m := New(i18n.New(i18n.PT), nil)
	if m.Open() || m.View() != "" {
		t.Fatal("palette should start hidden")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("closed palette must ignore keys")
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	typeText(m, "INST")
	got := ids(m.Filtered())
	if len(got) != 1 || got[0] != "installation" {
		t.Fatalf("filtered = %v", got)
	}

	m, _ = openPalette(t, i18n.PT)
	typeText(m, "ver")
	got = ids(m.Filtered())
	if strings.Join(got, ",") != "github,features" {
		t.Fatalf("declared order not kept: %v", got)
	}
}

func TestEmptyQueryListsEverything(t *testing.T) {
	m, _ := openPalette(t, i18n.EN)
	if len(m.Filtered()) != 4 {
		t.Fatalf("expected all actions, got %v", ids(m.Filtered()))
	}
}

func TestArrowsWrap(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Index() != 3 {
		t.Fatalf("up from 0 = %d, want 3", m.Index())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Index() != 0 {
		t.Fatalf("down from 3 = %d, want 0", m.Index())
	}
}

func TestArrowsOnEmptyResults(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	typeText(m, "zzz")
	if len(m.Filtered()) != 0 {
		t.Fatal("expected no results")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Index() != 0 {
		t.Fatalf("index = %d on empty list", m.Index())
	}
	if !strings.Contains(m.View(), "Nenhum resultado encontrado") {
		t.Fatal("empty state not rendered")
	}
}

func TestQueryChangeResetsIndex(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	typeText(m, "c")
	if m.Index() != 0 {
		t.Fatalf("index = %d after typing", m.Index())
	}
}

func TestEnterRunsSelected(t *testing.T) {
	m, ran := openPalette(t, i18n.PT)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if len(*ran) != 1 || (*ran)[0] != "features" {
		t.Fatalf("ran = %v", *ran)
	}
	if m.Open() {
		t.Fatal("palette should close after running an action")
	}
}

func TestEnterOnEmptyIsNoop(t *testing.T) {
	m, ran := openPalette(t, i18n.PT)
	typeText(m, "zzz")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("enter on empty results should do nothing")
	}
	if len(*ran) != 0 || !m.Open() {
		t.Fatal("nothing should run and palette stays open")
	}
}

func TestEscCloses(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	typeText(m, "zzz")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Open() {
		t.Fatal("esc should close")
	}
	if _, ok := cmd().(Closed); !ok {
		t.Fatal("expected Closed message")
	}
	m.Toggle()
	if m.Query() != "" {
		t.Fatalf("query survived reopen: %q", m.Query())
	}
}

func TestCtrlShortcutIgnoresFilter(t *testing.T) {
	m, ran := openPalette(t, i18n.PT)
	typeText(m, "zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if len(*ran) != 1 || (*ran)[0] != "usage" {
		t.Fatalf("ran = %v", *ran)
	}
}

func TestAltShortcut(t *testing.T) {
	m, ran := openPalette(t, i18n.PT)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true})
	if len(*ran) != 1 || (*ran)[0] != "installation" {
		t.Fatalf("ran = %v", *ran)
	}
}

func TestLanguageChangesFilter(t *testing.T) {
	m, _ := openPalette(t, i18n.PT)
	m.SetTranslator(i18n.New(i18n.EN))
	typeText(m, "how")
	got := ids(m.Filtered())
	if len(got) != 1 || got[0] != "usage" {
		t.Fatalf("filtered = %v", got)
	}
}
