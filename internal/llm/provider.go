package llm

import (
	"context"

	"github.com/liyas/soalgen/internal/exam"
)

// Provider is the generation backend boundary. All three calls are fallible,
// asynchronous and single-shot; a failure is surfaced once, no retry here.
type Provider interface {
	// GeneratePackage produces a whole exam package from the form request.
	GeneratePackage(ctx context.Context, req GenerateRequest) (exam.Package, error)
	// RegenerateQuestion produces a replacement for one question, keeping its
	// number, difficulty and type.
	RegenerateQuestion(ctx context.Context, original exam.QuestionItem, meta exam.Meta) (exam.QuestionItem, error)
	// ExplainAnswer produces a plain-text student-facing explanation of why
	// the keyed answer is correct.
	ExplainAnswer(ctx context.Context, q exam.QuestionItem, key exam.AnswerKeyItem, meta exam.Meta) (string, error)
}

// GenerateRequest carries the user's package request plus the document-header
// fields, which pass through the backend untouched into the package meta.
type GenerateRequest struct {
	Subject       string
	Grade         string
	Topic         string
	QuestionType  string
	QuestionCount int
	Description   string
	Language      string
	Header        exam.HeaderInfo
}
