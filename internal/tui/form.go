package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyas/soalgen/internal/catalog"
	"github.com/liyas/soalgen/internal/config"
	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/llm"
	"github.com/liyas/soalgen/internal/prefs"
)

// formField is one row of the request form. A non-nil options slice makes it
// a select field cycled with left/right; otherwise it takes typed text.
type formField struct {
	key     string
	label   string
	options []string
}

type formModel struct {
	fields []formField
	values map[string]string
	cursor int
}

// submitRow is the pseudo-field index one past the last real field.
func (f formModel) submitRow() int { return len(f.fields) }

func newFormModel(cfg config.Config, header exam.HeaderInfo) formModel {
	languages := make([]string, 0, len(catalog.LanguageOptions))
	for _, l := range catalog.LanguageOptions {
		languages = append(languages, l.Value)
	}
	fields := []formField{
		{key: "grade", label: "Kelas", options: catalog.GradeOptions},
		{key: "subject", label: "Mata Pelajaran"},
		{key: "topic", label: "Topik / Materi"},
		{key: "questionType", label: "Tipe Soal", options: catalog.QuestionTypeOptions},
		{key: "count", label: "Jumlah Soal"},
		{key: "language", label: "Bahasa Soal", options: languages},
		{key: "description", label: "Instruksi Tambahan"},
		{key: "foundationName", label: "Nama Yayasan"},
		{key: "schoolName", label: "Nama Sekolah"},
		{key: "schoolAddress", label: "Alamat Sekolah"},
		{key: "assessmentType", label: "Jenis Penilaian"},
		{key: "academicYear", label: "Tahun Ajaran"},
		{key: "duration", label: "Waktu Pengerjaan"},
		{key: "teacherName", label: "Nama Pengajar"},
	}
	values := map[string]string{
		"grade":          catalog.GradeOptions[0],
		"questionType":   catalog.QuestionTypeOptions[0],
		"count":          "10",
		"language":       cfg.UI.Language,
		"foundationName": header.FoundationName,
		"schoolName":     header.SchoolName,
		"schoolAddress":  header.SchoolAddress,
		"assessmentType": header.AssessmentType,
		"academicYear":   header.AcademicYear,
		"duration":       header.Duration,
		"teacherName":    header.TeacherName,
	}
	if values["language"] == "" {
		values["language"] = languages[0]
	}
	return formModel{fields: fields, values: values}
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		if a.hasPackage {
			a.state = viewPackage
			a.status = ""
		}
		return a, nil
	}
	if a.generating {
		return a, nil
	}
	f := &a.form
	switch m.String() {
	case "up", "shift+tab":
		if f.cursor > 0 {
			f.cursor--
		}
		return a, nil
	case "down", "tab":
		if f.cursor < f.submitRow() {
			f.cursor++
		}
		return a, nil
	}
	if f.cursor == f.submitRow() {
		if m.String() == "enter" {
			return a.submitForm()
		}
		return a, nil
	}
	field := f.fields[f.cursor]
	if field.options != nil {
		switch m.String() {
		case "left":
			f.values[field.key] = cycleOption(field.options, f.values[field.key], -1)
		case "right", "enter", " ":
			f.values[field.key] = cycleOption(field.options, f.values[field.key], 1)
		}
		return a, nil
	}
	switch m.Type {
	case tea.KeyEnter:
		if f.cursor < f.submitRow() {
			f.cursor++
		}
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		v := f.values[field.key]
		if len(v) > 0 {
			f.values[field.key] = trimLastRune(v)
		}
	case tea.KeySpace:
		f.values[field.key] += " "
	case tea.KeyRunes:
		f.values[field.key] += string(m.Runes)
	}
	return a, nil
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	f := a.form
	subject := strings.TrimSpace(f.values["subject"])
	if subject == "" {
		a.status = "Isi mata pelajaran dulu."
		return a, nil
	}
	if matched, ok := catalog.MatchSubject(f.values["grade"], subject); ok {
		subject = matched
		a.form.values["subject"] = matched
	}
	if strings.TrimSpace(f.values["topic"]) == "" {
		a.status = "Isi topik / materi dulu."
		return a, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(f.values["count"]))
	if err != nil || count <= 0 {
		a.status = "Jumlah soal harus angka positif."
		return a, nil
	}

	header := exam.HeaderInfo{
		FoundationName: strings.TrimSpace(f.values["foundationName"]),
		SchoolName:     strings.TrimSpace(f.values["schoolName"]),
		SchoolAddress:  strings.TrimSpace(f.values["schoolAddress"]),
		AssessmentType: strings.TrimSpace(f.values["assessmentType"]),
		AcademicYear:   strings.TrimSpace(f.values["academicYear"]),
		Duration:       strings.TrimSpace(f.values["duration"]),
		TeacherName:    strings.TrimSpace(f.values["teacherName"]),
	}
	if err := prefs.SaveHeader(header); err != nil {
		a.status = "error: " + err.Error()
	}

	req := llm.GenerateRequest{
		Subject:       subject,
		Grade:         f.values["grade"],
		Topic:         strings.TrimSpace(f.values["topic"]),
		QuestionType:  f.values["questionType"],
		QuestionCount: count,
		Description:   strings.TrimSpace(f.values["description"]),
		Language:      f.values["language"],
		Header:        header,
	}
	a.generating = true
	a.pageErr = ""
	a.status = ""
	return a, tea.Batch(a.generateCmd(req), a.spin.Tick)
}

func (a *App) renderForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SoalGen - Buat Paket Soal") + "\n\n")
	if a.pageErr != "" {
		b.WriteString(pageErrStyle.Render(a.pageErr) + "\n\n")
	}
	for i, field := range a.form.fields {
		marker := "  "
		if i == a.form.cursor {
			marker = "> "
		}
		value := a.form.values[field.key]
		if field.options != nil {
			value = "< " + value + " >"
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, fieldKeyStyle.Render(field.label+":"), value)
	}
	marker := "  "
	if a.form.cursor == a.form.submitRow() {
		marker = "> "
	}
	if a.generating {
		b.WriteString("\n" + marker + a.spin.View() + busyStyle.Render("Membuat paket soal...") + "\n")
	} else {
		b.WriteString("\n" + marker + "[ Buat Paket Soal ]\n")
	}
	b.WriteString("\n[↑/↓] Pindah  [←/→] Ganti pilihan  [enter] Lanjut/Buat")
	if a.hasPackage {
		b.WriteString("  [esc] Kembali ke paket")
	}
	b.WriteString("  [ctrl+c] Keluar")
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String()
}

func cycleOption(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(options)) % len(options)
	return options[idx]
}

func trimLastRune(s string) string {
	r := []rune(s)
	return string(r[:len(r)-1])
}
