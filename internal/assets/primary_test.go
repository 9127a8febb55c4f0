package assets

import "testing"

func TestPrimaryURL(t *testing.T) {
	cases := []struct {
		name string
		opt  DownloadOption
		url  string
		file string
	}{
		{
			name: "windows installer beats archive",
			opt: DownloadOption{Platform: Windows, BinaryName: "goanime-windows-amd64", DownloadURL: "bin",
				ArchiveName: "goanime-windows-amd64.zip", ArchiveURL: "zip",
				InstallerName: "GoAnime-Installer-1.0.0.exe", InstallerURL: "exe"},
			url:  "exe",
			file: "GoAnime-Installer-1.0.0.exe",
		},
		{
			name: "windows archive beats binary",
			opt: DownloadOption{Platform: Windows, BinaryName: "goanime-windows-amd64", DownloadURL: "bin",
				ArchiveName: "goanime-windows-amd64.zip", ArchiveURL: "zip"},
			url:  "zip",
			file: "goanime-windows-amd64.zip",
		},
		{
			name: "windows binary last",
			opt:  DownloadOption{Platform: Windows, BinaryName: "goanime-windows-amd64", DownloadURL: "bin"},
			url:  "bin",
			file: "goanime-windows-amd64",
		},
		{
			name: "linux archive first",
			opt: DownloadOption{Platform: Linux, BinaryName: "goanime-linux-amd64", DownloadURL: "bin",
				ArchiveName: "goanime-linux-amd64.tar.gz", ArchiveURL: "tgz"},
			url:  "tgz",
			file: "goanime-linux-amd64.tar.gz",
		},
		{
			name: "mac binary fallback",
			opt:  DownloadOption{Platform: Mac, BinaryName: "goanime-darwin-arm64", DownloadURL: "bin"},
			url:  "bin",
			file: "goanime-darwin-arm64",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PrimaryURL(tc.opt); got != tc.url {
				t.Fatalf("PrimaryURL = %q, want %q", got, tc.url)
			}
			if got := PrimaryName(tc.opt); got != tc.file {
				t.Fatalf("PrimaryName = %q, want %q", got, tc.file)
			}
		})
	}
}

func TestPlatformParsing(t *testing.T) {
	for in, want := range map[string]Platform{"darwin": Mac, "macOS": Mac, "linux": Linux, "Windows": Windows} {
		got, err := ParsePlatform(in)
		if err != nil || got != want {
			t.Fatalf("ParsePlatform(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePlatform("plan9"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if a, err := ParseArch("aarch64"); err != nil || a != ARM64 {
		t.Fatalf("ParseArch(aarch64) = %v, %v", a, err)
	}
	if Windows.Supports(ARM64) {
		t.Fatal("windows must not support arm64")
	}
	if Mac.ID() != "darwin" {
		t.Fatalf("unexpected mac id %s", Mac.ID())
	}
}
