package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

const (
	// minReviewRunes filters out fragments too short to carry opinion.
	minReviewRunes = 10
	// maxReviews caps one adapter's contribution, preserving DOM order.
	maxReviews = 30
)

// ExtractReviews pulls review texts out of a page snapshot by trying each
// selector in order, keeping DOM order within a selector. Short fragments
// are dropped and exact duplicates collapse to their first occurrence.
func ExtractReviews(html string, selectors []string, src domain.Source) ([]domain.ReviewItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var items []domain.ReviewItem

	for _, sel := range selectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if len(items) >= maxReviews {
				return
			}
			text := strings.TrimSpace(s.Text())
			if utf8.RuneCountInString(text) <= minReviewRunes {
				return
			}
			if _, dup := seen[text]; dup {
				return
			}
			seen[text] = struct{}{}
			items = append(items, domain.ReviewItem{Text: text, Source: src})
		})
	}

	return items, nil
}
