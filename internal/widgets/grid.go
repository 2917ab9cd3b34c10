package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Grid renders a cursor-tracked table of records. Column widths follow the
// widest cell, capped so long free text (competency statements, analysis
// notes) truncates rather than wraps.
type Grid struct {
	Headers []string
	Rows    [][]string
	Cursor  int
	MaxCol  int
}

const defaultMaxCol = 42

func (g Grid) Render(width int) string {
	if len(g.Headers) == 0 {
		return "(kosong)"
	}
	maxCol := g.MaxCol
	if maxCol <= 0 {
		maxCol = defaultMaxCol
	}

	widths := make([]int, len(g.Headers))
	for i, h := range g.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range g.Rows {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			if w := ansi.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCol {
			widths[i] = maxCol
		}
	}

	var b strings.Builder
	b.WriteString("  " + g.renderRow(g.Headers, widths, width) + "\n")
	for i, row := range g.Rows {
		marker := "  "
		if i == g.Cursor {
			marker = "> "
		}
		b.WriteString(marker + g.renderRow(row, widths, width) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (g Grid) renderRow(cells []string, widths []int, width int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "\n", " ")
		}
		parts[i] = padRightANSI(cell, widths[i])
	}
	line := strings.Join(parts, "  ")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
