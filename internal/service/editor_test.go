package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liyas/soalgen/internal/exam"
)

func TestEditorWorkingCopyIsolation(t *testing.T) {
	t.Parallel()

	pkg := alignedPackage(2)
	s := NewEditorSession(pkg.Questions[0], false)

	require.NoError(t, s.SetField("pertanyaan", "Diedit"))
	require.NoError(t, s.SetOption(0, "A. diedit"))

	// live package unaffected until commit
	require.Equal(t, "Soal", pkg.Questions[0].PromptText)
	require.Equal(t, "A. ", pkg.Questions[0].Options[0])

	out := s.Commit(pkg)
	require.Equal(t, "Diedit", out.Questions[0].PromptText)
	require.Equal(t, "A. diedit", out.Questions[0].Options[0])
	require.Len(t, out.Questions, 2)
}

func TestNewItemSessionNumbersFromQuestions(t *testing.T) {
	t.Parallel()

	pkg := alignedPackage(5)
	for _, kind := range exam.Kinds() {
		s := NewItemSession(pkg, kind)
		require.True(t, s.IsNew)
		require.Equal(t, kind, s.Kind)
		require.Equal(t, 6, s.Number())
	}
}

func TestCommitNewItemGrowsAllCollections(t *testing.T) {
	t.Parallel()

	pkg := alignedPackage(3)
	s := NewItemSession(pkg, exam.KindBlueprint)
	require.NoError(t, s.SetField("indikator", "Indikator baru"))

	out := s.Commit(pkg)
	require.Len(t, out.Blueprint, 4)
	require.Len(t, out.Questions, 4)
	require.Len(t, out.AnswerKey, 4)
	require.Len(t, out.Analysis, 4)
	require.Equal(t, 4, out.Meta.QuestionCount)
	require.Equal(t, "Indikator baru", out.Blueprint[3].Indicator)
}

func TestSetFieldPerKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		item  exam.Item
		field string
		get   func(exam.Item) string
	}{
		{"blueprint", exam.NewItem(exam.KindBlueprint, 1), "kompetensiDasar",
			func(it exam.Item) string { return it.(exam.BlueprintItem).CompetencyStatement }},
		{"question", exam.NewItem(exam.KindQuestion, 1), "deskripsiGambar",
			func(it exam.Item) string { return it.(exam.QuestionItem).ImageDescription }},
		{"answerKey", exam.NewItem(exam.KindAnswerKey, 1), "jawaban",
			func(it exam.Item) string { return it.(exam.AnswerKeyItem).AnswerText }},
		{"analysis", exam.NewItem(exam.KindAnalysis, 1), "dayaPembeda",
			func(it exam.Item) string { return it.(exam.AnalysisItem).Discrimination }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewEditorSession(tc.item, true)
			require.NoError(t, s.SetField(tc.field, "nilai baru"))
			require.Equal(t, "nilai baru", tc.get(s.Item()))
			require.Equal(t, "nilai baru", s.Field(tc.field))
		})
	}
}

func TestSetFieldUnknownName(t *testing.T) {
	t.Parallel()

	s := NewEditorSession(exam.NewItem(exam.KindAnswerKey, 1), true)
	require.Error(t, s.SetField("pertanyaan", "x"))
}

func TestSwitchingToMultipleChoiceSeedsOptions(t *testing.T) {
	t.Parallel()

	s := NewEditorSession(exam.QuestionItem{
		Number:       1,
		QuestionType: exam.TypeEssay,
		Difficulty:   exam.DifficultyHard,
	}, false)
	require.NoError(t, s.SetField("tipeSoal", string(exam.TypeMultipleChoice)))

	q := s.Item().(exam.QuestionItem)
	require.Equal(t, exam.DefaultOptions(), q.Options)
}

func TestSetOptionBounds(t *testing.T) {
	t.Parallel()

	s := NewEditorSession(exam.NewItem(exam.KindQuestion, 1), true)
	require.NoError(t, s.SetOption(4, "E. terakhir"))
	require.Error(t, s.SetOption(5, "F. tidak ada"))
	require.Error(t, s.SetOption(-1, "?"))

	k := NewEditorSession(exam.NewItem(exam.KindAnswerKey, 1), true)
	require.Error(t, k.SetOption(0, "A."))
}

func TestSetFieldWritesOptionByIndex(t *testing.T) {
	t.Parallel()

	s := NewEditorSession(exam.NewItem(exam.KindQuestion, 1), true)
	require.NoError(t, s.SetField("pilihan.2", "C. tiga"))
	require.Equal(t, "C. tiga", s.Field("pilihan.2"))
	require.Error(t, s.SetField("pilihan.9", "J. tidak ada"))
	require.Error(t, s.SetField("pilihan.x", "?"))
}

func TestFieldReadsOptionByIndex(t *testing.T) {
	t.Parallel()

	s := NewEditorSession(exam.NewItem(exam.KindQuestion, 1), true)
	require.NoError(t, s.SetOption(2, "C. tiga"))
	require.Equal(t, "C. tiga", s.Field("pilihan.2"))
	require.Empty(t, s.Field("pilihan.9"))
}
