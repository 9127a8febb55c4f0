package selection

import (
	"errors"
	"testing"

	"github.com/alvarorichard/goanime-site/internal/assets"
	"github.com/alvarorichard/goanime-site/internal/release"
)

func TestNewDetection(t *testing.T) {
	cases := []struct {
		name     string
		env      Env
		mac      assets.Arch
		linux    assets.Arch
		detected assets.Platform
	}{
		{"apple silicon", Env{OS: "darwin", Arch: "arm64"}, assets.ARM64, assets.AMD64, assets.Mac},
		{"intel mac", Env{OS: "darwin", Arch: "x86_64"}, assets.AMD64, assets.AMD64, assets.Mac},
		{"linux arm", Env{OS: "linux", Arch: "aarch64"}, assets.ARM64, assets.ARM64, assets.Linux},
		{"linux amd64", Env{OS: "Linux", Arch: "x86_64"}, assets.ARM64, assets.AMD64, assets.Linux},
		{"windows", Env{OS: "windows", Arch: "arm64"}, assets.ARM64, assets.AMD64, assets.Windows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(StaticDetector{Env: tc.env})
			if got := s.Arch(assets.Mac); got != tc.mac {
				t.Fatalf("mac arch = %s, want %s", got, tc.mac)
			}
			if got := s.Arch(assets.Linux); got != tc.linux {
				t.Fatalf("linux arch = %s, want %s", got, tc.linux)
			}
			if got := s.Arch(assets.Windows); got != assets.AMD64 {
				t.Fatalf("windows arch = %s, want amd64", got)
			}
			if p, ok := s.DetectedPlatform(); !ok || p != tc.detected {
				t.Fatalf("detected = %s (%v), want %s", p, ok, tc.detected)
			}
		})
	}
}

func TestNewDetectionErrorKeepsDefaults(t *testing.T) {
	s := New(StaticDetector{Err: errors.New("no host")})
	for p, want := range Defaults() {
		if got := s.Arch(p); got != want {
			t.Fatalf("%s arch = %s, want %s", p, got, want)
		}
	}
	if _, ok := s.DetectedPlatform(); ok {
		t.Fatal("expected no detected platform")
	}
}

func TestSelectOnlyTouchesOnePlatform(t *testing.T) {
	s := New(nil)
	if !s.Select(assets.Linux, assets.ARM64) {
		t.Fatal("select linux/arm64 rejected")
	}
	if s.Arch(assets.Linux) != assets.ARM64 {
		t.Fatal("linux selection not recorded")
	}
	if s.Arch(assets.Mac) != assets.ARM64 || s.Arch(assets.Windows) != assets.AMD64 {
		t.Fatal("other platforms changed")
	}
	if s.Select(assets.Windows, assets.ARM64) {
		t.Fatal("windows arm64 must be rejected")
	}
}

func TestCurrentFallbacks(t *testing.T) {
	table := assets.Resolve(&release.Release{Tag: "v1.0.0", Assets: []release.Asset{
		{Name: "goanime-darwin-amd64", URL: "mac-amd64"},
		{Name: "goanime-linux-amd64", URL: "linux-amd64"},
		{Name: "goanime-linux-arm64.tar.gz", URL: "linux-arm64.tgz"},
	}}, "")

	s := New(nil)

	// mac defaults to arm64 but only amd64 exists.
	opt, ok := s.Current(table, assets.Mac)
	if !ok || opt.Arch != assets.AMD64 {
		t.Fatalf("expected fallback to first mac option, got %+v ok=%v", opt, ok)
	}

	s.Select(assets.Linux, assets.ARM64)
	url, ok := s.PrimaryURL(table, assets.Linux)
	if !ok || url != "linux-arm64.tgz" {
		t.Fatalf("unexpected linux primary url %q ok=%v", url, ok)
	}

	if _, ok := s.Current(table, assets.Windows); ok {
		t.Fatal("expected no windows option")
	}
	if _, ok := s.PrimaryURL(table, assets.Windows); ok {
		t.Fatal("expected no windows primary url")
	}
}
