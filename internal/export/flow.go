package export

import (
	"fmt"
	"strings"

	"github.com/liyas/soalgen/internal/exam"
)

// FlowDocument renders a markdown document: question sheet first, then keyed
// sections with the blueprint and analysis as tables. Suited for onward
// conversion to word-processor formats.
func (e *Exporter) FlowDocument(pkg exam.Package) (string, error) {
	meta := pkg.Meta
	h := meta.HeaderInfo
	var b strings.Builder

	if h.FoundationName != "" {
		fmt.Fprintf(&b, "# %s\n\n", strings.ToUpper(h.FoundationName))
	}
	if h.SchoolName != "" {
		fmt.Fprintf(&b, "# %s\n\n", strings.ToUpper(h.SchoolName))
	}
	if h.SchoolAddress != "" {
		fmt.Fprintf(&b, "%s\n\n", h.SchoolAddress)
	}
	b.WriteString("---\n\n")
	if h.AssessmentType != "" {
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(h.AssessmentType))
	}
	if h.AcademicYear != "" {
		fmt.Fprintf(&b, "TAHUN AJARAN %s\n\n", h.AcademicYear)
	}

	teacher := h.TeacherName
	if teacher == "" {
		teacher = "....................."
	}
	duration := h.Duration
	if duration == "" {
		duration = "....................."
	}
	fmt.Fprintf(&b, "| Kelas | : %s | Hari/Tanggal | : ..................... |\n", meta.Grade)
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| Mata Pelajaran | : %s | Jam Ke- | : ..................... |\n", meta.Subject)
	fmt.Fprintf(&b, "| Pengajar | : %s | Waktu | : %s |\n\n", teacher, duration)

	fmt.Fprintf(&b, "**%s**\n\n", instructionLine)
	for _, q := range pkg.Questions {
		fmt.Fprintf(&b, "%d. %s\n", q.Number, q.PromptText)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "   - %s\n", opt)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Kunci Jawaban\n\n")
	for _, k := range pkg.AnswerKey {
		fmt.Fprintf(&b, "%d. %s\n", k.Number, k.AnswerText)
	}
	b.WriteString("\n")

	b.WriteString("## Kisi-Kisi Soal\n\n")
	b.WriteString("| No | Kompetensi Dasar | Indikator | Level Kognitif | Bentuk Soal |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, item := range pkg.Blueprint {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			item.Number, cell(item.CompetencyStatement), cell(item.Indicator), item.CognitiveLevel, item.QuestionForm)
	}
	b.WriteString("\n")

	b.WriteString("## Analisis Butir Soal\n\n")
	b.WriteString("| No | Tingkat Kesukaran | Daya Pembeda | Efektivitas Pengecoh | Validitas |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, a := range pkg.Analysis {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			a.Number, cell(a.Difficulty), cell(a.Discrimination), cell(a.DistractorEffectiveness), cell(a.Validity))
	}

	return e.write(FileName(pkg.Meta, "md"), b.String())
}

// cell keeps free text from breaking the table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
