package service

import (
	"context"
	"errors"

	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/llm"
)

// scriptedProvider returns canned results, or fails when failWith is set.
type scriptedProvider struct {
	pkg         exam.Package
	question    exam.QuestionItem
	explanation string
	failWith    error

	generateCalls   int
	regenerateCalls int
	explainCalls    int
}

func (p *scriptedProvider) GeneratePackage(_ context.Context, _ llm.GenerateRequest) (exam.Package, error) {
	p.generateCalls++
	if p.failWith != nil {
		return exam.Package{}, p.failWith
	}
	return p.pkg, nil
}

func (p *scriptedProvider) RegenerateQuestion(_ context.Context, _ exam.QuestionItem, _ exam.Meta) (exam.QuestionItem, error) {
	p.regenerateCalls++
	if p.failWith != nil {
		return exam.QuestionItem{}, p.failWith
	}
	return p.question, nil
}

func (p *scriptedProvider) ExplainAnswer(_ context.Context, _ exam.QuestionItem, _ exam.AnswerKeyItem, _ exam.Meta) (string, error) {
	p.explainCalls++
	if p.failWith != nil {
		return "", p.failWith
	}
	return p.explanation, nil
}

var errBackendDown = errors.New("backend unavailable")

// alignedPackage builds a consistent package with n items per collection.
func alignedPackage(n int) exam.Package {
	p := exam.Package{
		Meta: exam.Meta{Subject: "Fisika", Grade: "X", Topic: "Gerak Lurus", QuestionCount: n},
	}
	for i := 1; i <= n; i++ {
		p.Blueprint = append(p.Blueprint, exam.BlueprintItem{Number: i, CognitiveLevel: "C3"})
		p.Questions = append(p.Questions, exam.QuestionItem{
			Number:       i,
			Difficulty:   exam.DifficultyMedium,
			QuestionType: exam.TypeMultipleChoice,
			PromptText:   "Soal",
			Options:      exam.DefaultOptions(),
		})
		p.AnswerKey = append(p.AnswerKey, exam.AnswerKeyItem{Number: i, AnswerText: "A. "})
		p.Analysis = append(p.Analysis, exam.AnalysisItem{Number: i, Validity: "Valid"})
	}
	return p
}
