// Package browser opens links with the operating system's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/alvarorichard/goanime-site/internal/logger"
)

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open starts the default handler for url without waiting for it.
func Open(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}
	name, args := Command(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	err := cmd.Start()
	logger.LogCommand(name, args, err)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", url, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
