package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

var (
	// ErrValidation marks request problems detected before any
	// collaborator call.
	ErrValidation = errors.New("invalid request")

	// ErrMalformedResponse marks a model response with no decodable JSON
	// object. Terminal for the request; never retried.
	ErrMalformedResponse = errors.New("invalid AI response format")
)

const (
	// reviewTextLimit caps what is sent to the model.
	reviewTextLimit = 6000
	// requiredIndicators is the legacy scoring schema's fixed axis count.
	requiredIndicators = 10
)

// AnalysisService turns aggregated review text into structured ratings via
// one language-model call per request. No retries, no local state.
type AnalysisService struct {
	llm domain.LanguageModel
}

func NewAnalysisService(llm domain.LanguageModel) *AnalysisService {
	return &AnalysisService{llm: llm}
}

// Analyze scores req.ReviewText against the ten indicators.
func (s *AnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisResult, error) {
	if err := validateAnalysis(req); err != nil {
		return domain.AnalysisResult{}, err
	}
	prompt := buildAnalysisPrompt(req.Category, req.Indicators) +
		"\n\nReviews to analyze:\n" + capRunes(req.ReviewText, reviewTextLimit)
	return s.complete(ctx, prompt, req.Indicators)
}

// Reanalyze repeats the analysis with the previous result and the user's
// verbatim feedback embedded in the prompt.
func (s *AnalysisService) Reanalyze(ctx context.Context, req domain.AnalysisRequest, previous domain.AnalysisResult, feedback string) (domain.AnalysisResult, error) {
	if req.ReviewText == "" || feedback == "" {
		return domain.AnalysisResult{}, fmt.Errorf("%w: reviewText and feedback required", ErrValidation)
	}

	prev, err := json.MarshalIndent(previous, "", "  ")
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	var sb strings.Builder
	sb.WriteString(buildAnalysisPrompt(req.Category, req.Indicators))
	sb.WriteString("\n\nPrevious analysis result:\n")
	sb.Write(prev)
	sb.WriteString("\n\nUser feedback for re-analysis:\n")
	sb.WriteString(feedback)
	sb.WriteString("\n\nPlease re-analyze considering the feedback above.")
	sb.WriteString("\n\nReviews:\n")
	sb.WriteString(capRunes(req.ReviewText, reviewTextLimit))

	return s.complete(ctx, sb.String(), req.Indicators)
}

// GenerateDescription asks the model for a short Korean shop description.
// Review text is optional context; when absent the model works from the
// name and category alone.
func (s *AnalysisService) GenerateDescription(ctx context.Context, shopName string, category domain.Category, reviewText string) (string, error) {
	if shopName == "" {
		return "", fmt.Errorf("%w: shopName required", ErrValidation)
	}

	prompt := buildDescriptionPrompt(shopName, category, capRunes(Normalize(reviewText), reviewTextLimit))
	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	span, err := extractJSON(raw)
	if err != nil {
		return "", err
	}
	var out struct {
		DescriptionKo string `json:"descriptionKo"`
	}
	if err := json.Unmarshal(span, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out.DescriptionKo, nil
}

func (s *AnalysisService) complete(ctx context.Context, prompt string, indicators []string) (domain.AnalysisResult, error) {
	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	span, err := extractJSON(raw)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	var out domain.AnalysisResult
	if err := json.Unmarshal(span, &out); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// absent fields default to empty values, not nil
	if out.Scores == nil {
		out.Scores = []int{}
	}
	if out.BestReviews == nil {
		out.BestReviews = []domain.BestReview{}
	}
	out.Indicators = indicators
	return out, nil
}

func validateAnalysis(req domain.AnalysisRequest) error {
	if req.ReviewText == "" {
		return fmt.Errorf("%w: reviewText required", ErrValidation)
	}
	if !req.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	if len(req.Indicators) != requiredIndicators {
		return fmt.Errorf("%w: exactly %d indicators required, got %d", ErrValidation, requiredIndicators, len(req.Indicators))
	}
	return nil
}

// extractJSON locates the first-to-last brace span in the raw model output,
// tolerating surrounding prose and markdown code fences. This mirrors the
// model contract: JSON somewhere in free text, nothing stricter.
func extractJSON(raw string) ([]byte, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, ErrMalformedResponse
	}
	return []byte(raw[start : end+1]), nil
}

func capRunes(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}
