package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/liyas/soalgen/internal/exam"
)

// EditorSession stages edits to one record of one kind. The session holds a
// deep-cloned working copy, so in-progress edits never leak into the live
// package; Commit hands the copy to the store in one step.
type EditorSession struct {
	ID    uuid.UUID
	Kind  exam.Kind
	IsNew bool

	item exam.Item
}

// NewEditorSession opens a session over a clone of the given record. isNew
// marks records that do not exist in the package yet; the store does not
// care, but the UI words its confirmation differently.
func NewEditorSession(it exam.Item, isNew bool) *EditorSession {
	return &EditorSession{
		ID:    uuid.New(),
		Kind:  it.ItemKind(),
		IsNew: isNew,
		item:  exam.CloneItem(it),
	}
}

// NewItemSession opens a session over a brand-new default-valued record of
// the given kind, numbered from the question list.
func NewItemSession(pkg exam.Package, kind exam.Kind) *EditorSession {
	return NewEditorSession(exam.NewItem(kind, exam.NextNumber(pkg)), true)
}

// Item returns the current working copy.
func (s *EditorSession) Item() exam.Item {
	return s.item
}

// Number returns the working copy's item number.
func (s *EditorSession) Number() int {
	return s.item.ItemNumber()
}

// SetField updates one named field of the working copy. Field names are the
// wire names of the record kind, including "pilihan.N" for question options,
// mirroring Field. Values are accepted as-is; the session does not
// re-validate content.
func (s *EditorSession) SetField(field, value string) error {
	switch it := s.item.(type) {
	case exam.BlueprintItem:
		switch field {
		case "kompetensiDasar":
			it.CompetencyStatement = value
		case "indikator":
			it.Indicator = value
		case "levelKognitif":
			it.CognitiveLevel = value
		case "bentukSoal":
			it.QuestionForm = value
		default:
			return fmt.Errorf("unknown blueprint field %q", field)
		}
		s.item = it
	case exam.QuestionItem:
		switch field {
		case "pertanyaan":
			it.PromptText = value
		case "tingkatKesukaran":
			it.Difficulty = exam.Difficulty(value)
		case "tipeSoal":
			it.QuestionType = exam.QuestionType(value)
			if it.QuestionType == exam.TypeMultipleChoice && len(it.Options) == 0 {
				it.Options = exam.DefaultOptions()
			}
		case "deskripsiGambar":
			it.ImageDescription = value
		default:
			if i, ok := optionIndex(field); ok {
				return s.SetOption(i, value)
			}
			return fmt.Errorf("unknown question field %q", field)
		}
		s.item = it
	case exam.AnswerKeyItem:
		switch field {
		case "jawaban":
			it.AnswerText = value
		default:
			return fmt.Errorf("unknown answer-key field %q", field)
		}
		s.item = it
	case exam.AnalysisItem:
		switch field {
		case "tingkatKesukaran":
			it.Difficulty = value
		case "dayaPembeda":
			it.Discrimination = value
		case "efektivitasPengecoh":
			it.DistractorEffectiveness = value
		case "validitas":
			it.Validity = value
		default:
			return fmt.Errorf("unknown analysis field %q", field)
		}
		s.item = it
	}
	return nil
}

// SetOption updates one entry of a question's options.
func (s *EditorSession) SetOption(index int, value string) error {
	q, ok := s.item.(exam.QuestionItem)
	if !ok {
		return fmt.Errorf("%s record has no options", s.Kind)
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	q.Options[index] = value
	s.item = q
	return nil
}

// Field reads one named field of the working copy, for form rendering.
func (s *EditorSession) Field(field string) string {
	switch it := s.item.(type) {
	case exam.BlueprintItem:
		switch field {
		case "kompetensiDasar":
			return it.CompetencyStatement
		case "indikator":
			return it.Indicator
		case "levelKognitif":
			return it.CognitiveLevel
		case "bentukSoal":
			return it.QuestionForm
		}
	case exam.QuestionItem:
		switch field {
		case "pertanyaan":
			return it.PromptText
		case "tingkatKesukaran":
			return string(it.Difficulty)
		case "tipeSoal":
			return string(it.QuestionType)
		case "deskripsiGambar":
			return it.ImageDescription
		default:
			if i, ok := optionIndex(field); ok && i < len(it.Options) {
				return it.Options[i]
			}
		}
	case exam.AnswerKeyItem:
		if field == "jawaban" {
			return it.AnswerText
		}
	case exam.AnalysisItem:
		switch field {
		case "tingkatKesukaran":
			return it.Difficulty
		case "dayaPembeda":
			return it.Discrimination
		case "efektivitasPengecoh":
			return it.DistractorEffectiveness
		case "validitas":
			return it.Validity
		}
	}
	return ""
}

// optionIndex parses "pilihan.N" field names.
func optionIndex(field string) (int, bool) {
	rest, ok := strings.CutPrefix(field, "pilihan.")
	if !ok || len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, false
	}
	return int(rest[0] - '0'), true
}

// Commit writes the working copy into the package through the store and
// returns the new snapshot. The session is spent afterwards.
func (s *EditorSession) Commit(pkg exam.Package) exam.Package {
	return exam.UpdateItem(pkg, s.item)
}
