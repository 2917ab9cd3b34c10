package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/service"
	"github.com/liyas/soalgen/internal/widgets"
)

var tabOrder = []exam.Kind{exam.KindQuestion, exam.KindAnswerKey, exam.KindBlueprint, exam.KindAnalysis}

var tabLabels = map[exam.Kind]string{
	exam.KindQuestion:  "Soal",
	exam.KindAnswerKey: "Kunci Jawaban",
	exam.KindBlueprint: "Kisi-Kisi",
	exam.KindAnalysis:  "Analisis Butir",
}

func (a *App) handlePackageKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.tab = nextTab(a.tab, 1)
	case "shift+tab":
		a.tab = nextTab(a.tab, -1)
	case "g":
		a.state = viewForm
		a.status = ""
	case "up", "k":
		if a.cursors[a.tab] > 0 {
			a.cursors[a.tab]--
		}
	case "down", "j":
		if a.cursors[a.tab] < a.collectionLen(a.tab)-1 {
			a.cursors[a.tab]++
		}
	case "n":
		a.editor = service.NewItemSession(a.pkg, a.tab)
		a.openEditor()
	case "e":
		it, ok := a.selectedItem()
		if !ok {
			return a, nil
		}
		a.editor = service.NewEditorSession(it, false)
		a.openEditor()
	case "d":
		if n, ok := a.selectedNumber(); ok {
			a.deleteTarget = n
			a.modal = modalConfirmDelete
		}
	case "r":
		if a.tab != exam.KindQuestion {
			return a, nil
		}
		n, ok := a.selectedNumber()
		if !ok {
			return a, nil
		}
		if err := a.coord.Begin(n); err != nil {
			a.status = "Tunggu operasi sebelumnya selesai."
			return a, nil
		}
		a.status = ""
		return a, tea.Batch(a.regenerateCmd(n), a.spin.Tick)
	case "x":
		if a.tab != exam.KindQuestion {
			return a, nil
		}
		n, ok := a.selectedNumber()
		if !ok {
			return a, nil
		}
		if err := a.coord.Begin(n); err != nil {
			a.status = "Tunggu operasi sebelumnya selesai."
			return a, nil
		}
		a.status = ""
		return a, tea.Batch(a.explainCmd(n), a.spin.Tick)
	case "s":
		a.exportCursor = 0
		a.modal = modalExport
	}
	return a, nil
}

func nextTab(current exam.Kind, step int) exam.Kind {
	for i, k := range tabOrder {
		if k == current {
			return tabOrder[(i+step+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

func (a *App) collectionLen(kind exam.Kind) int {
	switch kind {
	case exam.KindBlueprint:
		return len(a.pkg.Blueprint)
	case exam.KindQuestion:
		return len(a.pkg.Questions)
	case exam.KindAnswerKey:
		return len(a.pkg.AnswerKey)
	default:
		return len(a.pkg.Analysis)
	}
}

// selectedItem resolves the cursor of the active tab to a record.
func (a *App) selectedItem() (exam.Item, bool) {
	i := a.cursors[a.tab]
	if i < 0 || i >= a.collectionLen(a.tab) {
		return nil, false
	}
	switch a.tab {
	case exam.KindBlueprint:
		return a.pkg.Blueprint[i], true
	case exam.KindQuestion:
		return a.pkg.Questions[i], true
	case exam.KindAnswerKey:
		return a.pkg.AnswerKey[i], true
	default:
		return a.pkg.Analysis[i], true
	}
}

func (a *App) selectedNumber() (int, bool) {
	it, ok := a.selectedItem()
	if !ok {
		return 0, false
	}
	return it.ItemNumber(), true
}

func (a *App) renderPackage() string {
	var b strings.Builder
	meta := a.pkg.Meta
	b.WriteString(titleStyle.Render(fmt.Sprintf("Paket Soal %s Kelas %s - %s", meta.Subject, meta.Grade, meta.Topic)) + "\n")

	var tabs []string
	for _, k := range tabOrder {
		label := " " + tabLabels[k] + " "
		if k == a.tab {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	b.WriteString(a.renderGrid() + "\n")

	if a.tab == exam.KindQuestion {
		if detail := a.renderQuestionDetail(); detail != "" {
			b.WriteString("\n" + detail + "\n")
		}
	}

	b.WriteString("\n[tab] Ganti tampilan  [e] Ubah  [n] Tambah  [d] Hapus")
	if a.tab == exam.KindQuestion {
		b.WriteString("  [r] Regenerasi  [x] Penjelasan")
	}
	b.WriteString("  [s] Simpan dokumen  [g] Form baru  [q] Keluar")
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String()
}

func (a *App) renderGrid() string {
	g := widgets.Grid{Cursor: a.cursors[a.tab]}
	switch a.tab {
	case exam.KindBlueprint:
		g.Headers = []string{"No", "Kompetensi Dasar", "Indikator", "Level", "Bentuk Soal"}
		for _, it := range a.pkg.Blueprint {
			g.Rows = append(g.Rows, []string{
				fmt.Sprint(it.Number), it.CompetencyStatement, it.Indicator, it.CognitiveLevel, it.QuestionForm,
			})
		}
	case exam.KindQuestion:
		g.Headers = []string{"No", "Tipe", "Kesukaran", "Pertanyaan", ""}
		for _, q := range a.pkg.Questions {
			g.Rows = append(g.Rows, []string{
				fmt.Sprint(q.Number), string(q.QuestionType), string(q.Difficulty), q.PromptText, a.itemBadge(q.Number),
			})
		}
	case exam.KindAnswerKey:
		g.Headers = []string{"No", "Jawaban"}
		for _, k := range a.pkg.AnswerKey {
			g.Rows = append(g.Rows, []string{fmt.Sprint(k.Number), k.AnswerText})
		}
	default:
		g.Headers = []string{"No", "Kesukaran", "Daya Pembeda", "Pengecoh", "Validitas"}
		for _, it := range a.pkg.Analysis {
			g.Rows = append(g.Rows, []string{
				fmt.Sprint(it.Number), it.Difficulty, it.Discrimination, it.DistractorEffectiveness, it.Validity,
			})
		}
	}
	return g.Render(a.width)
}

// itemBadge renders the transient per-question state shown in the list: the
// in-flight marker or the latest operation feedback.
func (a *App) itemBadge(number int) string {
	if busy, ok := a.coord.BusyItem(); ok && busy == number {
		return a.spin.View() + busyStyle.Render("memproses...")
	}
	if fb, ok := a.coord.Feedback(); ok && fb.ItemNumber == number {
		if fb.Outcome == service.OutcomeSuccess {
			return successStyle.Render(fb.Message)
		}
		return errorStyle.Render(fb.Message)
	}
	return ""
}

func (a *App) renderQuestionDetail() string {
	i := a.cursors[exam.KindQuestion]
	if i < 0 || i >= len(a.pkg.Questions) {
		return ""
	}
	q := a.pkg.Questions[i]
	var b strings.Builder
	fmt.Fprintf(&b, "Soal %d: %s\n", q.Number, q.PromptText)
	if q.ImageDescription != "" {
		fmt.Fprintf(&b, "[Gambar: %s]\n", q.ImageDescription)
	}
	for _, opt := range q.Options {
		b.WriteString("  " + opt + "\n")
	}
	if key, ok := a.pkg.Answer(q.Number); ok {
		b.WriteString("Kunci: " + key.AnswerText + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
