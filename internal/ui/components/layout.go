package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rows the shell reserves around a page.
const (
	tabsRows   = 4
	footerRows = 3
	hintRows   = 3

	minContentWidth  = 40
	minContentHeight = 10
)

// Layout is the space left for a page once the shell chrome is drawn.
type Layout struct {
	Width  int
	Height int

	ContentWidth  int
	ContentHeight int
}

// NewLayout sizes the page body for a width x height terminal.
func NewLayout(width, height int) *Layout {
	return newLayout(width, height, tabsRows+footerRows)
}

// WithHint gives up three more rows for the focus hint bar.
func (l *Layout) WithHint() *Layout {
	return newLayout(l.Width, l.Height, tabsRows+footerRows+hintRows)
}

func newLayout(width, height, chrome int) *Layout {
	return &Layout{
		Width:         width,
		Height:        height,
		ContentWidth:  max(width-4, minContentWidth),
		ContentHeight: max(height-chrome-2, minContentHeight),
	}
}

// Grid returns an empty grid spanning the content width, with as many
// columns of at least minWidth as fit, capped at maxColumns.
func (l *Layout) Grid(minWidth, maxColumns, spacing int) *Grid {
	cols := 1
	if minWidth > 0 {
		cols = (l.ContentWidth + spacing) / (minWidth + spacing)
	}
	cols = min(max(cols, 1), max(maxColumns, 1))
	return &Grid{Columns: cols, Spacing: spacing, Width: l.ContentWidth}
}

// Clip drops whatever does not fit in rows lines.
func Clip(content string, rows int) string {
	if rows <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxHeight(rows).Render(content)
}

// TruncateString shortens text to width terminal cells, ending in "..."
// when there is room for it.
func TruncateString(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= 3 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "...")
}
