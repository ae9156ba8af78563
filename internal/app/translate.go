package app

import (
	"context"
	"fmt"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// langAliases maps common caller spellings to the collaborator's codes.
var langAliases = map[string]string{
	"zh-CN":   "zh",
	"zh-Hans": "zh",
	"jp":      "ja",
	"kr":      "ko",
}

// TranslationService renders the Korean summary and description into each
// requested language. Unlike the adapters, one failed language aborts the
// whole call: a partial bundle is never returned.
type TranslationService struct {
	tr domain.Translator
}

func NewTranslationService(tr domain.Translator) *TranslationService {
	return &TranslationService{tr: tr}
}

// Translate returns one bundle entry per requested code. Bundle keys stay
// exactly as the caller supplied them; aliases apply only to the outbound
// collaborator call. An empty description translates to an empty string
// without a collaborator call.
func (s *TranslationService) Translate(ctx context.Context, summaryKo, descriptionKo string, languages []string) (domain.TranslationBundle, error) {
	if summaryKo == "" {
		return nil, fmt.Errorf("%w: summaryKo required", ErrValidation)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("%w: languages required", ErrValidation)
	}

	bundle := make(domain.TranslationBundle, len(languages))
	for _, code := range languages {
		target := code
		if alias, ok := langAliases[code]; ok {
			target = alias
		}

		summary, err := s.tr.Translate(ctx, summaryKo, "ko", target)
		if err != nil {
			return nil, fmt.Errorf("translate summary to %s: %w", code, err)
		}

		var description string
		if descriptionKo != "" {
			description, err = s.tr.Translate(ctx, descriptionKo, "ko", target)
			if err != nil {
				return nil, fmt.Errorf("translate description to %s: %w", code, err)
			}
		}

		bundle[code] = domain.TranslationEntry{Summary: summary, Description: description}
	}
	return bundle, nil
}
