package domain

// Source identifies the review platform a scrape ran against.
type Source string

const (
	SourceNaver  Source = "naver"
	SourceKakao  Source = "kakao"
	SourceGoogle Source = "google"
)

// ReviewItem is a single review fragment extracted from a platform page.
// It has no identity beyond its text and lives only for one request.
type ReviewItem struct {
	Text   string `json:"text"`
	Source Source `json:"source,omitempty"`
}

// ScrapeResult is the outcome of one adapter call.
// Success=false implies Reviews is empty and Error is set; a successful
// call may still carry zero reviews.
type ScrapeResult struct {
	Success bool         `json:"success"`
	Reviews []ReviewItem `json:"reviews"`
	Source  Source       `json:"source"`
	Error   string       `json:"error,omitempty"`
}

// Texts returns just the review strings, in extraction order.
func (r ScrapeResult) Texts() []string {
	out := make([]string, 0, len(r.Reviews))
	for _, it := range r.Reviews {
		out = append(out, it.Text)
	}
	return out
}
