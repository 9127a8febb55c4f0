package home

import (
	"errors"
	"strings"
	"testing"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/ui/events"
	tea "github.com/charmbracelet/bubbletea"
)

func sized(t *testing.T, lang i18n.Language) *Model {
	t.Helper()
	m := New(i18n.New(lang))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestAnchorsIncrease(t *testing.T) {
	m := sized(t, i18n.PT)
	prev := -1
	for s := Hero; s < sectionCount; s++ {
		if m.Anchor(s) <= prev {
			t.Fatalf("anchor %d = %d not after %d", s, m.Anchor(s), prev)
		}
		prev = m.Anchor(s)
	}
}

func TestJumpScrollsToSection(t *testing.T) {
	m := sized(t, i18n.PT)
	m.Update(Jump{Section: Features})
	if m.Offset() != m.Anchor(Features) || m.Offset() == 0 {
		t.Fatalf("offset = %d, want %d", m.Offset(), m.Anchor(Features))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if m.Offset() != m.Anchor(Installation) {
		t.Fatalf("offset = %d, want installation %d", m.Offset(), m.Anchor(Installation))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.Offset() != 0 {
		t.Fatalf("home key left offset %d", m.Offset())
	}
}

func TestLanguageSwitchRerenders(t *testing.T) {
	m := sized(t, i18n.PT)
	if m.Title() != "Início" {
		t.Fatalf("title = %q", m.Title())
	}
	m.Update(events.Language{Lang: i18n.ES})
	if m.Title() != "Inicio" {
		t.Fatalf("title = %q", m.Title())
	}
	if !strings.Contains(m.View(), "Presiona Ctrl+K") {
		t.Fatal("hero missing after switch")
	}
}

func TestCopyInstallCommand(t *testing.T) {
	m := sized(t, i18n.EN)
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if copied != InstallCommand {
		t.Fatalf("copied %q", copied)
	}

	m.copyText = func(string) error { return errors.New("no xclip") }
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if !strings.Contains(m.status, "no xclip") {
		t.Fatalf("status = %q", m.status)
	}
}
