package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/service"
	"github.com/liyas/soalgen/internal/widgets"
)

// editorField is one editable row of the record editor. Select fields carry
// their enum values and cycle in place; text fields open an input line.
type editorField struct {
	key     string
	label   string
	options []string
}

var difficultyOptions = []string{
	string(exam.DifficultyEasy),
	string(exam.DifficultyMedium),
	string(exam.DifficultyHard),
}

var questionTypeOptions = []string{
	string(exam.TypeMultipleChoice),
	string(exam.TypeShortAnswer),
	string(exam.TypeEssay),
}

func (a *App) openEditor() {
	a.editorFields = buildEditorFields(a.editor)
	a.editorCursor = 0
	a.editingField = false
	a.inputBuffer = ""
	a.modal = modalEditor
}

func buildEditorFields(s *service.EditorSession) []editorField {
	switch it := s.Item().(type) {
	case exam.BlueprintItem:
		return []editorField{
			{key: "kompetensiDasar", label: "Kompetensi Dasar"},
			{key: "indikator", label: "Indikator"},
			{key: "levelKognitif", label: "Level Kognitif"},
			{key: "bentukSoal", label: "Bentuk Soal"},
		}
	case exam.QuestionItem:
		fields := []editorField{
			{key: "pertanyaan", label: "Pertanyaan"},
			{key: "tipeSoal", label: "Tipe Soal", options: questionTypeOptions},
			{key: "tingkatKesukaran", label: "Tingkat Kesukaran", options: difficultyOptions},
			{key: "deskripsiGambar", label: "Deskripsi Gambar"},
		}
		for i := range it.Options {
			fields = append(fields, editorField{
				key:   fmt.Sprintf("pilihan.%d", i),
				label: fmt.Sprintf("Pilihan %c", 'A'+i),
			})
		}
		return fields
	case exam.AnswerKeyItem:
		return []editorField{
			{key: "jawaban", label: "Jawaban"},
		}
	default:
		return []editorField{
			{key: "tingkatKesukaran", label: "Tingkat Kesukaran"},
			{key: "dayaPembeda", label: "Daya Pembeda"},
			{key: "efektivitasPengecoh", label: "Efektivitas Pengecoh"},
			{key: "validitas", label: "Validitas"},
		}
	}
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalEditor:
		return a.handleEditorKey(m)
	case modalExplain:
		switch m.String() {
		case "esc", "enter", "q":
			a.modal = modalNone
			a.explanation = ""
		}
	case modalConfirmDelete:
		switch m.String() {
		case "y", "Y":
			n := a.deleteTarget
			a.modal = modalNone
			a.pkg = exam.DeleteItem(a.pkg, n)
			a.clampCursors()
			a.status = fmt.Sprintf("Butir %d dihapus, penomoran diperbarui.", n)
		case "n", "N", "esc":
			a.modal = modalNone
		}
	case modalExport:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.exportCursor > 0 {
				a.exportCursor--
			}
		case "down", "j":
			if a.exportCursor < len(exportLabels)-1 {
				a.exportCursor++
			}
		case "enter":
			format := exportFormat(a.exportCursor)
			a.modal = modalNone
			a.status = "Menyimpan dokumen..."
			return a, a.exportCmd(format)
		}
	}
	return a, nil
}

func (a *App) handleEditorKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	saveRow := len(a.editorFields)

	if a.editingField {
		field := a.editorFields[a.editorCursor]
		switch m.Type {
		case tea.KeyEsc:
			a.editingField = false
			a.inputBuffer = ""
		case tea.KeyEnter:
			if err := a.editor.SetField(field.key, a.inputBuffer); err != nil {
				a.status = "error: " + err.Error()
			}
			a.editingField = false
			a.inputBuffer = ""
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = trimLastRune(a.inputBuffer)
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
		return a, nil
	}

	switch m.String() {
	case "esc":
		a.modal = modalNone
		a.editor = nil
	case "up", "k":
		if a.editorCursor > 0 {
			a.editorCursor--
		}
	case "down", "j", "tab":
		if a.editorCursor < saveRow {
			a.editorCursor++
		}
	case "left", "right":
		if a.editorCursor >= saveRow {
			return a, nil
		}
		field := a.editorFields[a.editorCursor]
		if field.options == nil {
			return a, nil
		}
		step := 1
		if m.String() == "left" {
			step = -1
		}
		next := cycleOption(field.options, a.editor.Field(field.key), step)
		if err := a.editor.SetField(field.key, next); err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		// switching to multiple choice seeds options, changing the field list
		a.editorFields = buildEditorFields(a.editor)
	case "enter":
		if a.editorCursor == saveRow {
			isNew := a.editor.IsNew
			number := a.editor.Number()
			a.pkg = a.editor.Commit(a.pkg)
			a.editor = nil
			a.modal = modalNone
			a.clampCursors()
			if isNew {
				a.status = fmt.Sprintf("Butir %d ditambahkan.", number)
			} else {
				a.status = fmt.Sprintf("Butir %d disimpan.", number)
			}
			return a, nil
		}
		field := a.editorFields[a.editorCursor]
		if field.options != nil {
			next := cycleOption(field.options, a.editor.Field(field.key), 1)
			if err := a.editor.SetField(field.key, next); err != nil {
				a.status = "error: " + err.Error()
				return a, nil
			}
			a.editorFields = buildEditorFields(a.editor)
			return a, nil
		}
		a.editingField = true
		a.inputBuffer = a.editor.Field(field.key)
	}
	return a, nil
}

func (a *App) clampCursors() {
	for _, k := range tabOrder {
		if n := a.collectionLen(k); a.cursors[k] >= n {
			if n == 0 {
				a.cursors[k] = 0
			} else {
				a.cursors[k] = n - 1
			}
		}
	}
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalEditor:
		return a.renderEditor()
	case modalExplain:
		return titleStyle.Render("Penjelasan Jawaban") + "\n\n" + a.explanation + "\n\n[esc] Tutup"
	case modalConfirmDelete:
		return titleStyle.Render(fmt.Sprintf("Hapus butir %d?", a.deleteTarget)) +
			"\nBaris kisi-kisi, soal, kunci jawaban dan analisis nomor ini ikut\nterhapus, lalu butir berikutnya dinomori ulang.\n\n[y] Hapus  [n] Batal"
	case modalExport:
		out := titleStyle.Render("Simpan Dokumen") + "\n\n"
		for i, label := range exportLabels {
			marker := "  "
			if i == a.exportCursor {
				marker = "> "
			}
			out += marker + label + "\n"
		}
		return out + "\n[enter] Simpan  [esc] Batal"
	default:
		return ""
	}
}

func (a *App) renderEditor() string {
	title := "Ubah " + tabLabels[a.editor.Kind]
	if a.editor.IsNew {
		title = "Tambah " + tabLabels[a.editor.Kind]
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (No %d)", title, a.editor.Number())) + "\n\n")
	for i, field := range a.editorFields {
		marker := "  "
		if i == a.editorCursor {
			marker = "> "
		}
		value := a.editor.Field(field.key)
		if a.editingField && i == a.editorCursor {
			value = a.inputBuffer + "▏"
		} else if field.options != nil {
			value = "< " + value + " >"
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, fieldKeyStyle.Render(field.label+":"), value)
	}
	marker := "  "
	if a.editorCursor == len(a.editorFields) {
		marker = "> "
	}
	b.WriteString("\n" + marker + "[ Simpan ]\n")
	if a.editingField {
		b.WriteString("\n[enter] Terapkan  [esc] Batal ubah")
	} else {
		b.WriteString("\n[enter] Ubah/Simpan  [←/→] Ganti pilihan  [esc] Tutup tanpa simpan")
	}
	return b.String()
}

func (a *App) overlayModal(base, modal string) string {
	if a.width > 0 && a.height > 0 {
		return widgets.RenderPopup(base, modal, a.width, a.height)
	}
	return base + "\n\n" + modal
}
