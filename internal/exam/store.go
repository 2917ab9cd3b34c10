package exam

// Store operations. Each takes a Package plus arguments and returns a new,
// fully consistent Package; the input is never mutated. One logical exam item
// spans all four collections, so deletion cascades and additions pad the
// sibling collections to keep them length-aligned.

// AddItem appends it to the collection named by kind. Adding to any
// collection other than the question list pads the remaining three with one
// placeholder record carrying the same item number. QuestionCount is
// refreshed from the question list afterwards.
func AddItem(pkg Package, kind Kind, it Item) Package {
	out := pkg.Clone()
	number := it.ItemNumber()

	switch kind {
	case KindBlueprint:
		out.Blueprint = append(out.Blueprint, it.(BlueprintItem))
	case KindQuestion:
		out.Questions = append(out.Questions, it.(QuestionItem))
	case KindAnswerKey:
		out.AnswerKey = append(out.AnswerKey, it.(AnswerKeyItem))
	case KindAnalysis:
		out.Analysis = append(out.Analysis, it.(AnalysisItem))
	}

	if kind != KindQuestion {
		out = padSiblings(out, kind, number)
	}
	out.Meta.QuestionCount = len(out.Questions)
	return out
}

// DeleteItem removes the record with the given number from all four
// collections, renumbers each to a contiguous 1..N, and refreshes
// QuestionCount. A collection that has no record with that number is left
// as-is; the cascade is best-effort rather than a consistency check.
func DeleteItem(pkg Package, number int) Package {
	out := pkg.Clone()

	out.Blueprint = Renumber(deleteByNumber(out.Blueprint, number))
	out.Questions = Renumber(deleteByNumber(out.Questions, number))
	out.AnswerKey = Renumber(deleteByNumber(out.AnswerKey, number))
	out.Analysis = Renumber(deleteByNumber(out.Analysis, number))

	out.Meta.QuestionCount = len(out.Questions)
	return out
}

// UpdateItem commits an edited record. If a record with the same number
// already exists in its collection it is replaced in place, order preserved.
// Otherwise the record is appended and the other three collections each gain
// a placeholder with the same number, followed by a QuestionCount refresh.
// Which path runs depends only on whether the number currently exists, never
// on how the caller obtained the record.
func UpdateItem(pkg Package, it Item) Package {
	out := pkg.Clone()
	kind := it.ItemKind()
	number := it.ItemNumber()

	replaced := false
	switch kind {
	case KindBlueprint:
		out.Blueprint, replaced = replaceByNumber(out.Blueprint, it.(BlueprintItem))
	case KindQuestion:
		out.Questions, replaced = replaceByNumber(out.Questions, it.(QuestionItem))
	case KindAnswerKey:
		out.AnswerKey, replaced = replaceByNumber(out.AnswerKey, it.(AnswerKeyItem))
	case KindAnalysis:
		out.Analysis, replaced = replaceByNumber(out.Analysis, it.(AnalysisItem))
	}
	if replaced {
		return out
	}

	switch kind {
	case KindBlueprint:
		out.Blueprint = append(out.Blueprint, it.(BlueprintItem))
	case KindQuestion:
		out.Questions = append(out.Questions, it.(QuestionItem))
	case KindAnswerKey:
		out.AnswerKey = append(out.AnswerKey, it.(AnswerKeyItem))
	case KindAnalysis:
		out.Analysis = append(out.Analysis, it.(AnalysisItem))
	}
	out = padSiblings(out, kind, number)
	out.Meta.QuestionCount = len(out.Questions)
	return out
}

// ReplaceQuestion swaps exactly one question, leaving the blueprint, answer
// key and analysis untouched. Used by regeneration. A regenerated
// multiple-choice question can leave its answer-key row stale; resolving that
// needs the backend to return a refreshed key together with the question.
func ReplaceQuestion(pkg Package, number int, q QuestionItem) Package {
	out := pkg.Clone()
	q.Number = number
	for i := range out.Questions {
		if out.Questions[i].Number == number {
			out.Questions[i] = q
			break
		}
	}
	return out
}

// NextNumber returns the item number a brand-new record should carry. It is
// always derived from the question list, whichever kind is being added, so
// the cross-collection correlation survives additions.
func NextNumber(pkg Package) int {
	return len(pkg.Questions) + 1
}

// padSiblings appends a placeholder with the given number to every collection
// except the one named by kind.
func padSiblings(pkg Package, kind Kind, number int) Package {
	if kind != KindBlueprint {
		pkg.Blueprint = append(pkg.Blueprint, placeholderBlueprint(number))
	}
	if kind != KindQuestion {
		pkg.Questions = append(pkg.Questions, placeholderQuestion(number))
	}
	if kind != KindAnswerKey {
		pkg.AnswerKey = append(pkg.AnswerKey, placeholderAnswerKey(number))
	}
	if kind != KindAnalysis {
		pkg.Analysis = append(pkg.Analysis, placeholderAnalysis(number))
	}
	return pkg
}

func deleteByNumber[T numbered[T]](items []T, number int) []T {
	out := items[:0]
	for _, it := range items {
		if it.ItemNumber() != number {
			out = append(out, it)
		}
	}
	return out
}

func replaceByNumber[T numbered[T]](items []T, it T) ([]T, bool) {
	for i := range items {
		if items[i].ItemNumber() == it.ItemNumber() {
			items[i] = it
			return items, true
		}
	}
	return items, false
}
