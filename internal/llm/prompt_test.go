package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liyas/soalgen/internal/exam"
)

func TestLanguageInstruction(t *testing.T) {
	t.Parallel()

	require.Contains(t, languageInstruction("Bahasa Inggris"), "English")
	require.Contains(t, languageInstruction("Bahasa Sunda"), "Basa Sunda")
	require.Contains(t, languageInstruction("Bahasa Arab"), "العربية")
	require.Contains(t, languageInstruction(""), "Bahasa Indonesia")
}

func TestPaiInstructionOnlyForReligiousSubjects(t *testing.T) {
	t.Parallel()

	require.Contains(t, paiInstruction("Pendidikan Agama & Budi Pekerti"), "Al-Qur'an")
	require.Contains(t, paiInstruction("Fikih"), "Arab Utsmani")
	require.Empty(t, paiInstruction("Matematika"))
	require.Empty(t, paiInstruction("Fisika"))
}

func TestBuildPackagePrompt(t *testing.T) {
	t.Parallel()

	p := buildPackagePrompt(GenerateRequest{
		Subject:       "Fisika",
		Grade:         "XI",
		Topic:         "Dinamika Rotasi",
		QuestionType:  "Pilihan Ganda",
		QuestionCount: 15,
		Language:      "Bahasa Indonesia",
	})
	require.Contains(t, p, "Mata Pelajaran: Fisika")
	require.Contains(t, p, "Jumlah Soal: 15")
	require.Contains(t, p, "Deskripsi Tambahan: Tidak ada")
	require.Contains(t, p, "format LaTeX")
	require.Contains(t, p, "deskripsiGambar")
	require.NotContains(t, p, "Arab Utsmani")
}

func TestBuildRegeneratePromptKeepsConstraints(t *testing.T) {
	t.Parallel()

	q := exam.QuestionItem{
		Number:       3,
		Difficulty:   exam.DifficultyHard,
		QuestionType: exam.TypeMultipleChoice,
		PromptText:   "Soal lama",
	}
	p := buildRegeneratePrompt(q, exam.Meta{Subject: "Kimia", Grade: "XII", Topic: "Laju Reaksi"})
	require.Contains(t, p, "Nomor 3")
	require.Contains(t, p, "Tingkat Kesukaran: Sukar")
	require.Contains(t, p, "Tipe Soal: Pilihan Ganda")
	require.Contains(t, p, "Soal lama")
}

func TestBuildExplainPromptIncludesOptionsWhenPresent(t *testing.T) {
	t.Parallel()

	q := exam.QuestionItem{Number: 1, PromptText: "Pertanyaan", Options: []string{"A. satu", "B. dua"}}
	key := exam.AnswerKeyItem{Number: 1, AnswerText: "A. satu"}
	meta := exam.Meta{Subject: "Fisika", Grade: "X", Topic: "Gerak"}

	withOpts := buildExplainPrompt(q, key, meta)
	require.Contains(t, withOpts, "B. dua")
	require.Contains(t, withOpts, "plain text")

	q.Options = nil
	withoutOpts := buildExplainPrompt(q, key, meta)
	require.NotContains(t, withoutOpts, "- Pilihan:")
}
