package exam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenumberContiguous(t *testing.T) {
	t.Parallel()

	in := []AnswerKeyItem{
		{Number: 7, AnswerText: "A. tujuh"},
		{Number: 2, AnswerText: "B. dua"},
		{Number: 9, AnswerText: "C. sembilan"},
	}
	out := Renumber(in)

	require.Len(t, out, 3)
	for i, k := range out {
		require.Equal(t, i+1, k.Number)
	}
	// relative order and other fields preserved
	require.Equal(t, "A. tujuh", out[0].AnswerText)
	require.Equal(t, "B. dua", out[1].AnswerText)
	require.Equal(t, "C. sembilan", out[2].AnswerText)
	// input untouched
	require.Equal(t, 7, in[0].Number)
}

func TestRenumberIdempotent(t *testing.T) {
	t.Parallel()

	in := []BlueprintItem{
		{Number: 1, Indicator: "satu"},
		{Number: 2, Indicator: "dua"},
		{Number: 3, Indicator: "tiga"},
	}
	require.Equal(t, in, Renumber(in))
}

func TestRenumberEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, Renumber([]QuestionItem(nil)))
}
