package domain

// Category is the business category being evaluated.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryBeauty     Category = "beauty"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurant, CategoryCafe, CategoryBeauty:
		return true
	}
	return false
}

// AnalysisRequest carries the review text and the evaluation axes for one
// LLM scoring call. The legacy scoring schema requires exactly ten
// indicators.
type AnalysisRequest struct {
	ReviewText string   `json:"reviewText"`
	Category   Category `json:"category"`
	Indicators []string `json:"indicators"`
}

// BestReview is one of the model-selected standout reviews.
type BestReview struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// AnalysisResult is the structured output decoded from the model response.
// Scores align positionally with the request indicators. Fields the model
// omits stay at their zero values.
type AnalysisResult struct {
	Scores        []int        `json:"scores"`
	Confidence    int          `json:"confidence"`
	SummaryEn     string       `json:"summaryEn"`
	SummaryKo     string       `json:"summaryKo"`
	DescriptionEn string       `json:"descriptionEn,omitempty"`
	DescriptionKo string       `json:"descriptionKo,omitempty"`
	BestReviews   []BestReview `json:"bestReviews,omitempty"`
	Indicators    []string     `json:"indicators"`
}

// TranslationEntry holds the translated summary and description for one
// target language.
type TranslationEntry struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// TranslationBundle maps caller-supplied language codes to translations.
type TranslationBundle map[string]TranslationEntry
