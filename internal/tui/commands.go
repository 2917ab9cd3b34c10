package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyas/soalgen/internal/llm"
)

func (a *App) generateCmd(req llm.GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		pkg, err := a.generator.Generate(a.ctx, req)
		if err != nil {
			return generateErrMsg{err: err}
		}
		return generatedMsg{pkg: pkg}
	}
}

// regenerateCmd runs against a snapshot of the package, but carries back only
// the fresh question. It is applied to the live package when the message
// lands on the loop, so edits committed while the call was in flight stick.
func (a *App) regenerateCmd(n int) tea.Cmd {
	snapshot := a.pkg
	epoch := a.epoch
	return func() tea.Msg {
		q, err := a.coord.Regenerate(a.ctx, snapshot, n)
		if err != nil {
			return regenerateErrMsg{n: n, err: err}
		}
		return regeneratedMsg{q: q, n: n, epoch: epoch}
	}
}

func (a *App) explainCmd(n int) tea.Cmd {
	snapshot := a.pkg
	return func() tea.Msg {
		text, err := a.coord.Explain(a.ctx, snapshot, n)
		if err != nil {
			return explainErrMsg{n: n, err: err}
		}
		return explainedMsg{n: n, text: text}
	}
}

type exportFormat int

const (
	exportText exportFormat = iota
	exportFlow
	exportPaged
)

var exportLabels = []string{"Teks (.txt)", "Markdown (.md)", "Dokumen berhalaman (.paged.txt)"}

func (a *App) exportCmd(format exportFormat) tea.Cmd {
	snapshot := a.pkg
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		switch format {
		case exportFlow:
			path, err = a.exporter.FlowDocument(snapshot)
		case exportPaged:
			path, err = a.exporter.PagedDocument(snapshot)
		default:
			path, err = a.exporter.PlainText(snapshot)
		}
		if err != nil {
			return errMsg{err}
		}
		return exportedMsg{path: path}
	}
}
