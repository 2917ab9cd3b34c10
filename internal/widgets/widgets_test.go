package widgets

import (
	"strings"
	"testing"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Penjelasan", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Penjelasan") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestRenderPopupZeroCanvas(t *testing.T) {
	if out := RenderPopup("base", "popup", 0, 0); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestGridMarksCursorRow(t *testing.T) {
	g := Grid{
		Headers: []string{"No", "Jawaban"},
		Rows: [][]string{
			{"1", "C. 100 m"},
			{"2", "A. Benar"},
		},
		Cursor: 1,
	}
	out := g.Render(60)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "> ") {
		t.Fatalf("expected cursor marker on row 2, got %q", lines[2])
	}
	if strings.HasPrefix(lines[1], "> ") {
		t.Fatalf("unexpected cursor marker on row 1: %q", lines[1])
	}
}

func TestGridCapsColumnWidth(t *testing.T) {
	long := strings.Repeat("x", 200)
	g := Grid{
		Headers: []string{"No", "Kompetensi Dasar"},
		Rows:    [][]string{{"1", long}},
		MaxCol:  10,
	}
	out := g.Render(0)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, strings.Repeat("x", 11)) {
			t.Fatalf("column not capped: %q", line)
		}
	}
}

func TestGridFlattensNewlines(t *testing.T) {
	g := Grid{
		Headers: []string{"Indikator"},
		Rows:    [][]string{{"baris satu\nbaris dua"}},
	}
	out := g.Render(80)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("multi-line cell leaked a newline:\n%s", out)
	}
}
