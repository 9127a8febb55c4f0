package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T, opts Options) *Logger {
	t.Helper()
	if opts.Dir == "" {
		opts.Dir = t.TempDir()
	}
	l, err := New(opts)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	prev := SetDefault(l)
	t.Cleanup(func() {
		SetDefault(prev)
		l.Close()
	})
	return l
}

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestScopedLines(t *testing.T) {
	var echo bytes.Buffer
	l := newTestLogger(t, Options{Level: LevelInfo, Echo: &echo})

	For("download").Info("mounted generation %d", 2)
	For("download").Debug("hidden")
	Warn("plain")

	got := readLog(t, l)
	want := "2024-05-01 12:30:00 [INFO] download: mounted generation 2 (logger_test.go:"
	if !strings.HasPrefix(got, want) {
		t.Fatalf("log = %q, want prefix %q", got, want)
	}
	if strings.Contains(got, "hidden") {
		t.Fatal("debug line written at info level")
	}
	if !strings.Contains(got, "[WARN] plain (logger_test.go:") {
		t.Fatalf("unscoped line missing:\n%s", got)
	}
	if echo.String() != got {
		t.Fatalf("echo = %q, want %q", echo.String(), got)
	}
}

func TestLogCommand(t *testing.T) {
	l := newTestLogger(t, Options{Level: LevelDebug})

	LogCommand("xdg-open", []string{"https://example.com"}, nil)
	LogCommand("xdg-open", []string{"x"}, errors.New("not found"))

	got := readLog(t, l)
	for _, want := range []string{
		"[DEBUG] exec: xdg-open https://example.com (logger_test.go:",
		"[ERROR] exec: xdg-open x: not found (logger_test.go:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
}

func TestRotatesLargeLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	old := strings.Repeat("x", 64)
	if err := os.WriteFile(path, []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	l := newTestLogger(t, Options{Dir: dir, MaxSize: 32})
	l.Info("fresh")

	rotated, err := os.ReadFile(path + ".1")
	if err != nil || string(rotated) != old {
		t.Fatalf("rotated = %q, %v", rotated, err)
	}
	if got := readLog(t, l); strings.Contains(got, old) || !strings.Contains(got, "fresh") {
		t.Fatalf("new log = %q", got)
	}
}

func TestSmallLogIsAppended(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte("earlier\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l := newTestLogger(t, Options{Dir: dir})
	l.Info("later")

	if got := readLog(t, l); !strings.HasPrefix(got, "earlier\n") {
		t.Fatalf("log = %q", got)
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Fatal("small log was rotated")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"WARN", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if got != tc.want || (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
	}
	if s := Level(9).String(); s != "LEVEL(9)" {
		t.Fatalf("out of range level = %q", s)
	}
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	if err := os.WriteFile(path, []byte("one\n\ntwo  \nthree\n   \nfour\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Tail(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, "|") != "three|four" {
		t.Fatalf("tail = %q", got)
	}

	all, _ := Tail(path, 0)
	if strings.Join(all, "|") != "one|two|three|four" {
		t.Fatalf("full tail = %q", all)
	}

	if _, err := Tail(filepath.Join(t.TempDir(), "missing"), 5); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestClosedLoggerDropsLines(t *testing.T) {
	l := newTestLogger(t, Options{})
	l.Close()
	l.Info("after close")
	if got := readLog(t, l); strings.Contains(got, "after close") {
		t.Fatalf("line written after close:\n%s", got)
	}
	if !strings.Contains(readLog(t, l), "stopped") {
		t.Fatal("close marker missing")
	}
}
