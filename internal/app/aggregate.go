package app

import (
	"strings"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

const (
	// maxMergedReviews caps the cross-platform merge.
	maxMergedReviews = 30
	// combinedTextLimit keeps the blob inside downstream token budgets.
	combinedTextLimit = 8000
)

// Aggregate merges reviews from all successful results in invocation order,
// drops exact duplicates across the combined set, caps at 30 entries and
// joins the survivors into one space-separated blob truncated to the
// character budget. Every adapter failing yields an empty blob, which is a
// valid (if low-value) analysis input, not an error.
func Aggregate(results []domain.ScrapeResult) ([]string, string) {
	seen := make(map[string]struct{})
	merged := make([]string, 0, maxMergedReviews)

outer:
	for _, r := range results {
		if !r.Success {
			continue // failed adapters contributed nothing
		}
		for _, it := range r.Reviews {
			if _, dup := seen[it.Text]; dup {
				continue
			}
			seen[it.Text] = struct{}{}
			merged = append(merged, it.Text)
			if len(merged) == maxMergedReviews {
				break outer
			}
		}
	}

	combined := strings.Join(merged, " ")
	if runes := []rune(combined); len(runes) > combinedTextLimit {
		combined = string(runes[:combinedTextLimit])
	}
	return merged, combined
}
