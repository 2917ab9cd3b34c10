package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/liyas/soalgen/internal/exam"
)

// DefaultModel is used when the config does not name one.
const DefaultModel = "gemini-2.5-flash"

// GeminiProvider calls the Gemini API with structured-output schemas so the
// response parses straight into the package types.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a provider from an API key and model name.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) GeneratePackage(ctx context.Context, req GenerateRequest) (exam.Package, error) {
	prompt := buildPackagePrompt(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   packageSchema(),
		Temperature:      genai.Ptr[float32](0.8),
	})
	if err != nil {
		return exam.Package{}, fmt.Errorf("gemini: generate package: %w", err)
	}

	var pkg exam.Package
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &pkg); err != nil {
		return exam.Package{}, fmt.Errorf("gemini: parse package response: %w", err)
	}

	// Questions that need an image carry a description; prefix the prompt so
	// the rendered document points the student at it.
	for i, q := range pkg.Questions {
		if strings.TrimSpace(q.ImageDescription) != "" {
			pkg.Questions[i].PromptText = "Perhatikan gambar berikut untuk menjawab soal.\n\n" + q.PromptText
		}
	}

	// Header fields never travel through the model; inject them afterwards.
	pkg.Meta.HeaderInfo = req.Header
	return pkg, nil
}

func (g *GeminiProvider) RegenerateQuestion(ctx context.Context, original exam.QuestionItem, meta exam.Meta) (exam.QuestionItem, error) {
	prompt := buildRegeneratePrompt(original, meta)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   questionSchema(),
	})
	if err != nil {
		return exam.QuestionItem{}, fmt.Errorf("gemini: regenerate question %d: %w", original.Number, err)
	}

	var q exam.QuestionItem
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &q); err != nil {
		return exam.QuestionItem{}, fmt.Errorf("gemini: parse question response: %w", err)
	}
	return q, nil
}

func (g *GeminiProvider) ExplainAnswer(ctx context.Context, q exam.QuestionItem, key exam.AnswerKeyItem, meta exam.Meta) (string, error) {
	prompt := buildExplainPrompt(q, key, meta)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: explain question %d: %w", q.Number, err)
	}
	return resp.Text(), nil
}
