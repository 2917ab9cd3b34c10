package exam

// numbered is satisfied by record types that can produce a copy of themselves
// carrying a different item number.
type numbered[T any] interface {
	Item
	withNumber(n int) T
}

func (b BlueprintItem) withNumber(n int) BlueprintItem { b.Number = n; return b }
func (q QuestionItem) withNumber(n int) QuestionItem   { q.Number = n; return q }
func (k AnswerKeyItem) withNumber(n int) AnswerKeyItem { k.Number = n; return k }
func (a AnalysisItem) withNumber(n int) AnalysisItem   { a.Number = n; return a }

// Renumber returns a new slice in which the record at position i carries item
// number i+1, preserving relative order and every other field. Applied to each
// collection after a cascading delete.
func Renumber[T numbered[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.withNumber(i + 1)
	}
	return out
}
