package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alvarorichard/goanime-site/internal/i18n"
	"github.com/alvarorichard/goanime-site/internal/release"
)

func clearLocale(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "GOANIME_SITE_LANGUAGE", "GOANIME_SITE_RELEASE_REPO"} {
		t.Setenv(k, "")
	}
}

func TestLoadFromWritesDefaults(t *testing.T) {
	clearLocale(t)
	t.Setenv("LANG", "en_US.UTF-8")
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Lang() != i18n.EN {
		t.Fatalf("language = %q, want en from $LANG", cfg.Language)
	}
	if cfg.Release.Repo != release.DefaultRepo || cfg.Release.DownloadBase != release.DefaultDownloadBase {
		t.Fatalf("unexpected release defaults: %+v", cfg.Release)
	}
	if cfg.Timeout() != release.DefaultTimeout {
		t.Fatalf("timeout = %s", cfg.Timeout())
	}
	if !cfg.UI.AltScreen || !cfg.UI.MouseEnabled {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
}

func TestLoadFromDefaultsToPortuguese(t *testing.T) {
	clearLocale(t)
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Lang() != i18n.PT {
		t.Fatalf("language = %q, want pt", cfg.Language)
	}
}

func TestSetLanguagePersists(t *testing.T) {
	clearLocale(t)
	dir := t.TempDir()
	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := cfg.SetLanguage(i18n.ES); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	again, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Lang() != i18n.ES {
		t.Fatalf("reloaded language = %q, want es", again.Language)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearLocale(t)
	t.Setenv("GOANIME_SITE_RELEASE_REPO", "someone/fork")
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Release.Repo != "someone/fork" {
		t.Fatalf("repo = %q", cfg.Release.Repo)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	clearLocale(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("language: fr\nrelease:\n  timeout_seconds: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Lang() != i18n.PT {
		t.Fatalf("language = %q", cfg.Language)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout())
	}
}
