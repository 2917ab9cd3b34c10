package export

import (
	"fmt"
	"strings"

	"github.com/liyas/soalgen/internal/exam"
)

// PlainText renders the full transcript: letterhead, blueprint, questions,
// answer key and analysis in one flat text file.
func (e *Exporter) PlainText(pkg exam.Package) (string, error) {
	var b strings.Builder
	b.WriteString(headerBlock(pkg.Meta))
	b.WriteString("\n")

	b.WriteString("--- KISI-KISI SOAL ---\n")
	for _, item := range pkg.Blueprint {
		fmt.Fprintf(&b, "No: %d\n", item.Number)
		fmt.Fprintf(&b, "Kompetensi Dasar: %s\n", item.CompetencyStatement)
		fmt.Fprintf(&b, "Indikator: %s\n", item.Indicator)
		fmt.Fprintf(&b, "Level Kognitif: %s\n", item.CognitiveLevel)
		fmt.Fprintf(&b, "Bentuk Soal: %s\n\n", item.QuestionForm)
	}

	b.WriteString("--- SOAL ---\n")
	b.WriteString(instructionLine + "\n\n")
	for _, q := range pkg.Questions {
		for _, line := range questionLines(q) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("--- KUNCI JAWABAN ---\n")
	for _, k := range pkg.AnswerKey {
		fmt.Fprintf(&b, "%d. %s\n", k.Number, k.AnswerText)
	}
	b.WriteString("\n")

	b.WriteString("--- ANALISIS BUTIR SOAL ---\n")
	for _, a := range pkg.Analysis {
		fmt.Fprintf(&b, "No: %d | Kesukaran: %s | Pembeda: %s | Pengecoh: %s | Validitas: %s\n",
			a.Number, a.Difficulty, a.Discrimination, a.DistractorEffectiveness, a.Validity)
	}

	return e.write(FileName(pkg.Meta, "txt"), b.String())
}
