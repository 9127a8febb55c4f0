package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alvarorichard/goanime-site/internal/assets"
	"github.com/alvarorichard/goanime-site/internal/release"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// writeTable prints t as a text table, json or yaml.
func writeTable(w io.Writer, t assets.Table, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case "table", "text":
		writeText(w, t)
		return nil
	default:
		return fmt.Errorf("unknown format %q (use table, json or yaml)", format)
	}
}

func writeText(w io.Writer, t assets.Table) {
	title := "GoAnime " + release.Canonical(t.Tag)
	if t.Prerelease {
		title += " (pre-release)"
	}
	fmt.Fprintln(w, title)
	if t.ChecksumURL != "" {
		fmt.Fprintf(w, "Checksums: %s\n", t.ChecksumURL)
	}
	fmt.Fprintln(w)

	rows := [][]string{{"PLATFORM", "ARCH", "FILE", "SIZE", "URL"}}
	for _, p := range assets.Platforms() {
		opts := t.For(p)
		if len(opts) == 0 {
			rows = append(rows, []string{string(p), "-", "-", "-", "not published"})
			continue
		}
		for _, o := range opts {
			size := "-"
			if n := assets.PrimarySize(o); n > 0 {
				size = humanize.Bytes(uint64(n))
			}
			rows = append(rows, []string{string(p), string(o.Arch), assets.PrimaryName(o), size, assets.PrimaryURL(o)})
		}
	}

	fmt.Fprintln(w, renderRows(rows[0], rows[1:]))
}

// renderRows lays rows out under headers in columns sized by display width,
// with a rule under the header.
func renderRows(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().PaddingRight(2)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(headers...).
		Rows(rows...)

	lines := strings.Split(tbl.Render(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
