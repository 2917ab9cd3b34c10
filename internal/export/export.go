// Package export renders a finalized package into documents. The package is
// consumed read-only; renderers never feed anything back into the store.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liyas/soalgen/internal/exam"
)

// Instruction line printed above the question sheet.
const instructionLine = "A. BERILAH TANDA SILANG (X) PADA SALAH SATU JAWABAN YANG PALING BENAR !"

// Exporter writes rendered documents under Dir.
type Exporter struct {
	Dir string
}

// FileName builds the conventional document name for a package.
func FileName(meta exam.Meta, ext string) string {
	return fmt.Sprintf("Paket Soal %s Kelas %s.%s", meta.Subject, meta.Grade, ext)
}

func (e *Exporter) write(name, content string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// headerBlock renders the document letterhead the same way in every format.
func headerBlock(meta exam.Meta) string {
	h := meta.HeaderInfo
	var b strings.Builder
	b.WriteString("============================================\n")
	if h.FoundationName != "" {
		b.WriteString(strings.ToUpper(h.FoundationName) + "\n")
	}
	if h.SchoolName != "" {
		b.WriteString(strings.ToUpper(h.SchoolName) + "\n")
	}
	if h.SchoolAddress != "" {
		b.WriteString(h.SchoolAddress + "\n")
	}
	b.WriteString("--------------------------------------------\n")
	if h.AssessmentType != "" {
		b.WriteString(strings.ToUpper(h.AssessmentType) + "\n")
	}
	if h.AcademicYear != "" {
		b.WriteString("TAHUN AJARAN " + h.AcademicYear + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Mata Pelajaran: " + meta.Subject + "\n")
	b.WriteString("Kelas: " + meta.Grade + "\n")
	if h.TeacherName != "" {
		b.WriteString("Pengajar: " + h.TeacherName + "\n")
	}
	if h.Duration != "" {
		b.WriteString("Waktu: " + h.Duration + "\n")
	}
	b.WriteString("============================================\n")
	return b.String()
}

func questionLines(q exam.QuestionItem) []string {
	lines := []string{fmt.Sprintf("%d. %s", q.Number, q.PromptText)}
	for _, opt := range q.Options {
		lines = append(lines, opt)
	}
	return lines
}
