package reset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func seed(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()
	opts := Options{
		ConfigDir:   filepath.Join(root, "home", ".goanime-site"),
		FallbackDir: filepath.Join(root, "cwd", ".goanime-site"),
		TempDir:     filepath.Join(root, "tmp"),
		Out:         &bytes.Buffer{},
	}
	for _, dir := range []string{opts.ConfigDir, opts.FallbackDir, opts.TempDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	files := []string{
		filepath.Join(opts.ConfigDir, "config.yaml"),
		filepath.Join(opts.ConfigDir, "debug.log"),
		filepath.Join(opts.FallbackDir, "config.yaml"),
		filepath.Join(opts.TempDir, "goanime-site-debug.log"),
		filepath.Join(opts.TempDir, "unrelated.log"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return opts
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestForceRemovesEverything(t *testing.T) {
	opts := seed(t)
	opts.Force = true

	if err := Run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if exists(opts.ConfigDir) || exists(opts.FallbackDir) {
		t.Fatal("config directories left behind")
	}
	if exists(filepath.Join(opts.TempDir, "goanime-site-debug.log")) {
		t.Fatal("temp log left behind")
	}
	if !exists(filepath.Join(opts.TempDir, "unrelated.log")) {
		t.Fatal("unrelated temp file removed")
	}
	if !strings.Contains(opts.Out.(*bytes.Buffer).String(), "Removed 1 temporary file(s)") {
		t.Fatalf("output:\n%s", opts.Out.(*bytes.Buffer).String())
	}
}

func TestDeclineKeepsFiles(t *testing.T) {
	opts := seed(t)
	opts.In = strings.NewReader("n\n")

	if err := Run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !exists(opts.ConfigDir) || !exists(opts.FallbackDir) {
		t.Fatal("declined reset removed files")
	}
}

func TestPerStepConfirmation(t *testing.T) {
	opts := seed(t)
	// continue, remove config, keep fallback
	opts.In = strings.NewReader("y\nyes\nn\n")

	if err := Run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if exists(opts.ConfigDir) {
		t.Fatal("config directory should be removed")
	}
	if !exists(opts.FallbackDir) {
		t.Fatal("fallback directory should be kept")
	}
}

func TestMissingConfigIsFine(t *testing.T) {
	opts := seed(t)
	opts.Force = true
	if err := os.RemoveAll(opts.ConfigDir); err != nil {
		t.Fatal(err)
	}
	if err := Run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(opts.Out.(*bytes.Buffer).String(), "No configuration directory found") {
		t.Fatal("missing config not reported")
	}
}
