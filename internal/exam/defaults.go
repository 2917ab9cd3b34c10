package exam

// Default field values used when constructing a brand-new record before any
// backend involvement. The analysis descriptors are the optimistic defaults a
// teacher would start from and are free text, not enums.

const defaultCognitiveLevel = "C3"

// DefaultOptions returns the five lettered multiple-choice placeholders.
func DefaultOptions() []string {
	return []string{"A. ", "B. ", "C. ", "D. ", "E. "}
}

// NewItem constructs a default-valued record of the given kind carrying the
// given item number.
func NewItem(kind Kind, number int) Item {
	switch kind {
	case KindBlueprint:
		return BlueprintItem{
			Number:         number,
			CognitiveLevel: defaultCognitiveLevel,
			QuestionForm:   string(TypeMultipleChoice),
		}
	case KindQuestion:
		return QuestionItem{
			Number:       number,
			Difficulty:   DifficultyMedium,
			QuestionType: TypeMultipleChoice,
			Options:      DefaultOptions(),
		}
	case KindAnswerKey:
		return AnswerKeyItem{Number: number}
	case KindAnalysis:
		return AnalysisItem{
			Number:                  number,
			Difficulty:              string(DifficultyMedium),
			Discrimination:          "Baik",
			DistractorEffectiveness: "Efektif",
			Validity:                "Valid",
		}
	}
	return nil
}

// placeholder records keep sibling collections length-aligned when an item is
// added to only one of them. Unlike NewItem they carry empty field values, so
// a padded row reads as "fill me in" rather than as authored content.
func placeholderBlueprint(number int) BlueprintItem {
	return BlueprintItem{Number: number}
}

func placeholderQuestion(number int) QuestionItem {
	return QuestionItem{
		Number:       number,
		PromptText:   "Pertanyaan baru",
		Difficulty:   DifficultyMedium,
		QuestionType: TypeMultipleChoice,
	}
}

func placeholderAnswerKey(number int) AnswerKeyItem {
	return AnswerKeyItem{Number: number}
}

func placeholderAnalysis(number int) AnalysisItem {
	return AnalysisItem{Number: number}
}
