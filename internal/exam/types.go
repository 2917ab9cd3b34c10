package exam

// The four collections of a package share one ordinal key, the item number.
// Item N in the question list corresponds to item N in the blueprint, the
// answer key and the analysis table. Collections may transiently differ in
// length; every committed store operation re-aligns them to 1..N.

// Kind identifies one of the four item collections.
type Kind string

const (
	KindBlueprint Kind = "kisiKisi"
	KindQuestion  Kind = "soal"
	KindAnswerKey Kind = "kunciJawaban"
	KindAnalysis  Kind = "analisisButirSoal"
)

// Kinds lists every collection kind, in document order.
func Kinds() []Kind {
	return []Kind{KindBlueprint, KindQuestion, KindAnswerKey, KindAnalysis}
}

// Difficulty of a question. Wire values are Indonesian, as produced by the
// generation backend.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Mudah"
	DifficultyMedium Difficulty = "Sedang"
	DifficultyHard   Difficulty = "Sukar"
)

// QuestionType of a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "Pilihan Ganda"
	TypeShortAnswer    QuestionType = "Isian Singkat"
	TypeEssay          QuestionType = "Uraian"
)

// Item is implemented by exactly the four record types.
type Item interface {
	ItemNumber() int
	ItemKind() Kind
}

// BlueprintItem is one row of the kisi-kisi table.
type BlueprintItem struct {
	Number              int    `json:"nomor"`
	CompetencyStatement string `json:"kompetensiDasar"`
	Indicator           string `json:"indikator"`
	CognitiveLevel      string `json:"levelKognitif"`
	QuestionForm        string `json:"bentukSoal"`
}

func (b BlueprintItem) ItemNumber() int { return b.Number }
func (b BlueprintItem) ItemKind() Kind  { return KindBlueprint }

// QuestionItem is one question. Options has exactly five entries for
// multiple-choice questions and is nil otherwise.
type QuestionItem struct {
	Number           int          `json:"nomor"`
	Difficulty       Difficulty   `json:"tingkatKesukaran"`
	QuestionType     QuestionType `json:"tipeSoal"`
	PromptText       string       `json:"pertanyaan"`
	ImageDescription string       `json:"deskripsiGambar,omitempty"`
	Options          []string     `json:"pilihan,omitempty"`
}

func (q QuestionItem) ItemNumber() int { return q.Number }
func (q QuestionItem) ItemKind() Kind  { return KindQuestion }

// AnswerKeyItem is one answer-key row. For multiple choice the answer text is
// "A. …" style; for essays it holds a short grading rubric.
type AnswerKeyItem struct {
	Number     int    `json:"nomor"`
	AnswerText string `json:"jawaban"`
}

func (k AnswerKeyItem) ItemNumber() int { return k.Number }
func (k AnswerKeyItem) ItemKind() Kind  { return KindAnswerKey }

// AnalysisItem is one row of the theoretical item-quality analysis. All
// fields are free text, unlike the enums on QuestionItem.
type AnalysisItem struct {
	Number                  int    `json:"nomor"`
	Difficulty              string `json:"tingkatKesukaran"`
	Discrimination          string `json:"dayaPembeda"`
	DistractorEffectiveness string `json:"efektivitasPengecoh"`
	Validity                string `json:"validitas"`
}

func (a AnalysisItem) ItemNumber() int { return a.Number }
func (a AnalysisItem) ItemKind() Kind  { return KindAnalysis }

// HeaderInfo is an opaque pass-through record for document headers. The store
// never interprets it; renderers do.
type HeaderInfo struct {
	FoundationName string `json:"foundationName,omitempty"`
	SchoolName     string `json:"schoolName,omitempty"`
	SchoolAddress  string `json:"schoolAddress,omitempty"`
	AssessmentType string `json:"assessmentType,omitempty"`
	AcademicYear   string `json:"academicYear,omitempty"`
	Duration       string `json:"duration,omitempty"`
	TeacherName    string `json:"teacherName,omitempty"`
}

// Meta describes the package as a whole. QuestionCount tracks
// len(Package.Questions) after every committed mutation.
type Meta struct {
	Subject       string     `json:"subject"`
	Grade         string     `json:"grade"`
	Topic         string     `json:"topic"`
	QuestionType  string     `json:"questionType"`
	QuestionCount int        `json:"questionCount"`
	HeaderInfo    HeaderInfo `json:"headerInfo"`
}

// Package is one full exam package: the four correlated collections plus
// metadata. Values are treated as immutable; store operations return a new
// Package rather than mutating in place.
type Package struct {
	Blueprint []BlueprintItem `json:"kisiKisi"`
	Questions []QuestionItem  `json:"soal"`
	AnswerKey []AnswerKeyItem `json:"kunciJawaban"`
	Analysis  []AnalysisItem  `json:"analisisButirSoal"`
	Meta      Meta            `json:"meta"`
}

// Question returns the question with the given number, or false.
func (p Package) Question(number int) (QuestionItem, bool) {
	for _, q := range p.Questions {
		if q.Number == number {
			return q, true
		}
	}
	return QuestionItem{}, false
}

// Answer returns the answer-key row for the given number, or false.
func (p Package) Answer(number int) (AnswerKeyItem, bool) {
	for _, k := range p.AnswerKey {
		if k.Number == number {
			return k, true
		}
	}
	return AnswerKeyItem{}, false
}

// Clone deep-copies the package so callers can hold a snapshot across edits.
func (p Package) Clone() Package {
	out := p
	out.Blueprint = append([]BlueprintItem(nil), p.Blueprint...)
	out.Questions = make([]QuestionItem, len(p.Questions))
	for i, q := range p.Questions {
		q.Options = append([]string(nil), q.Options...)
		out.Questions[i] = q
	}
	out.AnswerKey = append([]AnswerKeyItem(nil), p.AnswerKey...)
	out.Analysis = append([]AnalysisItem(nil), p.Analysis...)
	return out
}

// CloneItem deep-copies one record, detaching any slice fields from the
// original. Editor sessions stage edits on such copies.
func CloneItem(it Item) Item {
	switch v := it.(type) {
	case QuestionItem:
		v.Options = append([]string(nil), v.Options...)
		return v
	default:
		return it
	}
}
