package app

import (
	"fmt"
	"strings"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// buildAnalysisPrompt produces the deterministic category evaluation prompt:
// every indicator enumerated with a 1-based ordinal, the 1-10 scale, and the
// fixed JSON output schema the parser expects.
func buildAnalysisPrompt(category domain.Category, indicators []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert reviewer analyzing Korean %s for foreign tourists.\n", category)
	fmt.Fprintf(&sb, "Based on the reviews provided, evaluate the following %d indicators on a scale of 1-10:\n\n", len(indicators))
	for i, ind := range indicators {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ind)
	}
	sb.WriteString(`
Also provide:
- A confidence score (1-10) for your analysis
- A one-line summary in English targeting foreign tourists (max 100 chars)
- A one-line summary in Korean (max 50 chars)
- A short shop description in English and in Korean (max 300 chars each)
- Up to 10 of the most positive reviews as bestReviews, each with a masked userId, a date, a rating from 1 to 5 and content of at most 150 chars

Response format (JSON only, no markdown):
{
  "scores": [score1, score2, ...],
  "confidence": number,
  "summaryEn": "string",
  "summaryKo": "string",
  "descriptionEn": "string",
  "descriptionKo": "string",
  "bestReviews": [{"userId": "string", "date": "YYYY-MM-DD", "rating": number, "content": "string"}]
}`)
	return sb.String()
}

// buildDescriptionPrompt asks for a Korean marketing description of the
// shop, optionally grounded on scraped review text.
func buildDescriptionPrompt(shopName string, category domain.Category, reviewText string) string {
	var sb strings.Builder
	sb.WriteString("Write a warm, factual Korean description (2-3 sentences, max 300 chars) of the following Korean local business for a tourist-facing listing.\n\n")
	fmt.Fprintf(&sb, "Shop name: %s\n", shopName)
	if category != "" {
		fmt.Fprintf(&sb, "Category: %s\n", category)
	}
	if reviewText != "" {
		fmt.Fprintf(&sb, "\nCustomer reviews for grounding:\n%s\n", reviewText)
	}
	sb.WriteString("\nResponse format (JSON only, no markdown):\n{\"descriptionKo\": \"string\"}")
	return sb.String()
}
