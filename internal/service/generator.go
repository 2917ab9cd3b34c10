package service

import (
	"context"
	"fmt"

	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/llm"
)

// Localized page-level failure message for whole-package generation.
const MsgGenerateErr = "Gagal menghasilkan paket soal. Model AI mungkin mengalami masalah. Silakan coba lagi."

// GeneratorService produces whole packages through the backend. Unlike the
// item-scoped operations it has no busy slot; the caller disables its own
// trigger while a generation is outstanding.
type GeneratorService struct {
	Provider llm.Provider
}

// Generate requests a full package and normalizes the result: the question
// count always reflects the question list, and the request's form fields win
// over whatever the model echoed back into meta.
func (s *GeneratorService) Generate(ctx context.Context, req llm.GenerateRequest) (exam.Package, error) {
	if req.QuestionCount <= 0 {
		return exam.Package{}, fmt.Errorf("generate: question count must be positive, got %d", req.QuestionCount)
	}

	pkg, err := s.Provider.GeneratePackage(ctx, req)
	if err != nil {
		return exam.Package{}, err
	}

	pkg.Meta.Subject = req.Subject
	pkg.Meta.Grade = req.Grade
	pkg.Meta.Topic = req.Topic
	pkg.Meta.QuestionType = req.QuestionType
	pkg.Meta.QuestionCount = len(pkg.Questions)
	pkg.Meta.HeaderInfo = req.Header
	return pkg, nil
}
