package app

import (
	"context"
	"strings"
	"testing"

	"github.com/alvarorichard/goanime-site/internal/config"
	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/modules/home"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/alvarorichard/goanime-site/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
)

type stubSource struct {
	calls int
	err   error
}

func (s *stubSource) Latest(ctx context.Context) (*release.Release, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &release.Release{
		Tag: "v1.2.0",
		Assets: []release.Asset{
			{Name: "goanime-linux-amd64", URL: "https://dl/linux-amd64", Size: 10},
		},
	}, nil
}

type fixture struct {
	m      *Model
	dir    string
	src    *stubSource
	opened []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	dir := t.TempDir()
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	f := &fixture{dir: dir, src: &stubSource{}}
	f.m = New(cfg, "test", Options{
		Source:   f.src,
		Detector: selection.StaticDetector{Env: selection.Env{OS: "linux", Arch: "amd64"}},
		Open:     func(u string) error { f.opened = append(f.opened, u); return nil },
	})
	f.m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return f
}

func (f *fixture) press(msg tea.KeyMsg) tea.Cmd {
	_, cmd := f.m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// messages runs cmd and returns the messages it produces, expanding batches
// one level deep.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

func TestTabSwitchLoadsDownloadOnce(t *testing.T) {
	f := newFixture(t)

	cmd := f.press(tea.KeyMsg{Type: tea.KeyTab})
	if f.m.activeModule != tabDownload {
		t.Fatalf("active = %d", f.m.activeModule)
	}
	msgs := messages(cmd)
	if f.src.calls != 1 {
		t.Fatalf("source called %d times", f.src.calls)
	}

	// switch away before the result is delivered
	f.press(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.m.activeModule != tabHome {
		t.Fatalf("active = %d", f.m.activeModule)
	}
	for _, msg := range msgs {
		f.m.Update(msg)
	}
	if !strings.Contains(f.m.download.View(), "v1.2.0") {
		t.Fatal("download page missed the release delivered while hidden")
	}

	if cmd := f.press(tea.KeyMsg{Type: tea.KeyTab}); cmd != nil {
		messages(cmd)
	}
	if f.src.calls != 1 {
		t.Fatalf("revisiting the tab refetched (%d calls)", f.src.calls)
	}
}

func (f *fixture) deliver(cmd tea.Cmd) {
	for _, msg := range messages(cmd) {
		f.m.Update(msg)
	}
}

func TestRetryOnUnfocusedFailedTab(t *testing.T) {
	f := newFixture(t)
	f.src.err = release.ErrFetch

	f.deliver(f.press(tea.KeyMsg{Type: tea.KeyTab}))
	if f.m.moduleFocused {
		t.Fatal("switching tabs focused the page")
	}
	if f.src.calls != 1 {
		t.Fatalf("source called %d times", f.src.calls)
	}

	f.src.err = nil
	f.deliver(f.press(runes("r")))
	if f.src.calls != 2 {
		t.Fatalf("r on the failed tab made %d calls, want 2", f.src.calls)
	}
	if !strings.Contains(f.m.download.View(), "v1.2.0") {
		t.Fatal("retry did not load the release")
	}

	f.deliver(f.press(runes("r")))
	if f.src.calls != 2 {
		t.Fatalf("r on a loaded page refetched (%d calls)", f.src.calls)
	}
}

func TestRetryKeyIgnoredOnHome(t *testing.T) {
	f := newFixture(t)
	if cmd := f.press(runes("r")); cmd != nil {
		f.deliver(cmd)
	}
	if f.src.calls != 0 {
		t.Fatalf("r on home fetched (%d calls)", f.src.calls)
	}
}

func TestPaletteIsGlobal(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	if !f.m.moduleFocused {
		t.Fatal("enter should focus the page")
	}
	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !f.m.palette.Open() {
		t.Fatal("ctrl+k should open the palette while a page is focused")
	}
	if !strings.Contains(f.m.View(), "Change Language") {
		t.Fatal("palette view missing actions")
	}

	// typing goes to the palette, not the page
	f.press(runes("q"))
	if f.m.quitting || f.m.palette.Query() != "q" {
		t.Fatalf("query = %q quitting = %v", f.m.palette.Query(), f.m.quitting)
	}

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	if f.m.palette.Open() {
		t.Fatal("esc should close the palette")
	}
	if !f.m.moduleFocused {
		t.Fatal("closing the palette should not unfocus the page")
	}
}

func TestPaletteShortcuts(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	messages(f.press(tea.KeyMsg{Type: tea.KeyCtrlD}))
	if f.m.activeModule != tabDownload || f.m.palette.Open() {
		t.Fatalf("active = %d open = %v", f.m.activeModule, f.m.palette.Open())
	}
	if f.src.calls != 1 {
		t.Fatalf("download action should start a fetch, calls = %d", f.src.calls)
	}

	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	f.press(tea.KeyMsg{Type: tea.KeyCtrlF})
	if f.m.activeModule != tabHome {
		t.Fatalf("features action left tab %d", f.m.activeModule)
	}
	if f.m.home.Offset() != f.m.home.Anchor(home.Features) {
		t.Fatalf("offset = %d, want features anchor %d", f.m.home.Offset(), f.m.home.Anchor(home.Features))
	}

	// sections near the end scroll as far as the page allows
	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	f.press(tea.KeyMsg{Type: tea.KeyCtrlU})
	if f.m.home.Offset() <= f.m.home.Anchor(home.Features) {
		t.Fatalf("usage action did not scroll past features (offset %d)", f.m.home.Offset())
	}

	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	messages(f.press(tea.KeyMsg{Type: tea.KeyCtrlG}))
	if len(f.opened) != 1 || f.opened[0] != home.RepoURL {
		t.Fatalf("opened = %v", f.opened)
	}
}

func TestPaletteEnterRunsFilteredAction(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlK})
	for _, r := range "feat" {
		f.press(runes(string(r)))
	}
	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	if f.m.palette.Open() {
		t.Fatal("palette should close after running an action")
	}
	if f.m.home.Offset() != f.m.home.Anchor(home.Features) {
		t.Fatalf("offset = %d, want features anchor", f.m.home.Offset())
	}
}

func TestLanguageCyclePersists(t *testing.T) {
	f := newFixture(t)
	if f.m.Language() != i18n.EN {
		t.Fatalf("initial language = %s", f.m.Language())
	}

	f.press(runes("g"))
	if f.m.Language() != i18n.ES {
		t.Fatalf("language = %s, want es", f.m.Language())
	}
	if got, want := f.m.download.Title(), i18n.T(i18n.ES, i18n.NavDownload); got != want {
		t.Fatalf("download title = %q, want %q", got, want)
	}
	if !strings.Contains(f.m.View(), i18n.T(i18n.ES, i18n.FooterShortcuts)) {
		t.Fatal("footer not translated")
	}

	cfg, err := config.LoadFrom(f.dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Lang() != i18n.ES {
		t.Fatalf("persisted language = %s", cfg.Lang())
	}
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t)

	f.press(runes("?"))
	if !strings.Contains(f.m.View(), "GOANIME HELP") {
		t.Fatal("help overlay not shown")
	}
	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	if f.m.showHelp {
		t.Fatal("esc should close help")
	}
}

func TestQuitOnlyWhenUnfocused(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	f.press(runes("q"))
	if f.m.quitting {
		t.Fatal("q inside a focused page must not quit")
	}
	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	if f.m.moduleFocused {
		t.Fatal("esc should unfocus")
	}
	if cmd := f.press(runes("q")); cmd == nil || !f.m.quitting {
		t.Fatal("q should quit")
	}
}
