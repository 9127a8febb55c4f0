package release

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

const helloSHA = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestParseChecksums(t *testing.T) {
	data := []byte(`# generated
` + helloSHA + `  goanime-linux-amd64
` + helloSHA + ` *dist/goanime-darwin-arm64.tar.gz
not-a-digest  goanime-windows-amd64

`)
	sums := ParseChecksums(data)
	if len(sums) != 2 {
		t.Fatalf("want 2 entries, got %d: %v", len(sums), sums)
	}
	if sums["goanime-darwin-arm64.tar.gz"] != helloSHA {
		t.Fatalf("unexpected digest for tarball: %q", sums["goanime-darwin-arm64.tar.gz"])
	}
}

func TestVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Verify(path, helloSHA); err != nil {
		t.Fatalf("verify: %v", err)
	}
	err := Verify(path, "00"+helloSHA[2:])
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
}

func TestFetcherDownload(t *testing.T) {
	errReset := errors.New("connection reset")
	f := &Fetcher{HTTP: &http.Client{Transport: stubTransport{res: map[string]stubResponse{
		"https://dl/ok":      {body: "hello"},
		"https://dl/partial": {body: "hel", readErr: errReset},
	}}}}
	dir := t.TempDir()

	dest := filepath.Join(dir, "ok")
	if err := f.Download(context.Background(), "https://dl/ok", dest); err != nil {
		t.Fatalf("download: %v", err)
	}
	if err := Verify(dest, helloSHA); err != nil {
		t.Fatalf("verify: %v", err)
	}

	err := f.Download(context.Background(), "https://dl/partial", filepath.Join(dir, "partial"))
	if !errors.Is(err, errReset) {
		t.Fatalf("partial download err = %v, want %v", err, errReset)
	}

	if err := f.Download(context.Background(), "https://dl/missing", filepath.Join(dir, "missing")); err == nil {
		t.Fatal("404 should fail")
	}
	if err := f.Download(context.Background(), "https://dl/ok", filepath.Join(dir, "no", "such", "dir")); err == nil {
		t.Fatal("unwritable destination should fail")
	}
}
