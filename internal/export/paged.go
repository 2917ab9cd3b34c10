package export

import (
	"fmt"
	"strings"

	"github.com/liyas/soalgen/internal/exam"
)

// linesPerPage approximates an A4 sheet of 11pt text.
const linesPerPage = 48

// PagedDocument renders a print-oriented document: the question sheet flows
// across numbered pages separated by form feeds, with the letterhead on page
// one; the answer key, blueprint and analysis each start on a fresh page.
func (e *Exporter) PagedDocument(pkg exam.Package) (string, error) {
	p := &paginator{}

	for _, line := range strings.Split(strings.TrimRight(headerBlock(pkg.Meta), "\n"), "\n") {
		p.add(line)
	}
	p.add("")
	p.add(instructionLine)
	p.add("")
	for _, q := range pkg.Questions {
		// keep a question and its options on one page where possible
		p.addBlock(questionLines(q))
		p.add("")
	}

	p.breakPage()
	p.add("KUNCI JAWABAN")
	p.add("")
	for _, k := range pkg.AnswerKey {
		p.add(fmt.Sprintf("%d. %s", k.Number, k.AnswerText))
	}

	p.breakPage()
	p.add("KISI-KISI SOAL")
	p.add("")
	for _, item := range pkg.Blueprint {
		p.addBlock([]string{
			fmt.Sprintf("No: %d", item.Number),
			"Kompetensi Dasar: " + item.CompetencyStatement,
			"Indikator: " + item.Indicator,
			"Level Kognitif: " + item.CognitiveLevel,
			"Bentuk Soal: " + item.QuestionForm,
			"",
		})
	}

	p.breakPage()
	p.add("ANALISIS BUTIR SOAL")
	p.add("")
	for _, a := range pkg.Analysis {
		p.add(fmt.Sprintf("No: %d | Kesukaran: %s | Pembeda: %s | Pengecoh: %s | Validitas: %s",
			a.Number, a.Difficulty, a.Discrimination, a.DistractorEffectiveness, a.Validity))
	}

	return e.write(FileName(pkg.Meta, "paged.txt"), p.render())
}

type paginator struct {
	pages   [][]string
	current []string
}

func (p *paginator) add(line string) {
	if len(p.current) >= linesPerPage {
		p.breakPage()
	}
	p.current = append(p.current, line)
}

// addBlock keeps the lines together on one page when the block fits at all.
func (p *paginator) addBlock(lines []string) {
	if len(lines) <= linesPerPage && len(p.current)+len(lines) > linesPerPage {
		p.breakPage()
	}
	for _, line := range lines {
		p.add(line)
	}
}

func (p *paginator) breakPage() {
	if len(p.current) == 0 {
		return
	}
	p.pages = append(p.pages, p.current)
	p.current = nil
}

func (p *paginator) render() string {
	p.breakPage()
	var b strings.Builder
	for i, page := range p.pages {
		if i > 0 {
			b.WriteString("\f")
		}
		b.WriteString(strings.Join(page, "\n"))
		fmt.Fprintf(&b, "\n\nHalaman %d dari %d\n", i+1, len(p.pages))
	}
	return b.String()
}
