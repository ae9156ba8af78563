package app_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/jooooonyoung/kotreet-scraper/internal/app"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

func ok(src domain.Source, texts ...string) domain.ScrapeResult {
	r := domain.ScrapeResult{Success: true, Source: src}
	for _, t := range texts {
		r.Reviews = append(r.Reviews, domain.ReviewItem{Text: t, Source: src})
	}
	return r
}

func TestAggregate_DedupAcrossAdapters(t *testing.T) {
	results := []domain.ScrapeResult{
		ok(domain.SourceNaver, "맛있어요", "친절해요"),
		ok(domain.SourceGoogle, "맛있어요", "조용해요"),
	}
	merged, _ := app.Aggregate(results)

	count := 0
	for _, m := range merged {
		if m == "맛있어요" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one 맛있어요, got %d in %v", count, merged)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged reviews, got %d", len(merged))
	}
}

func TestAggregate_CapAtThirtyPreservingOrder(t *testing.T) {
	var a, b domain.ScrapeResult
	a.Success, a.Source = true, domain.SourceNaver
	b.Success, b.Source = true, domain.SourceGoogle
	for i := 0; i < 25; i++ {
		a.Reviews = append(a.Reviews, domain.ReviewItem{Text: fmt.Sprintf("naver-%02d", i)})
		b.Reviews = append(b.Reviews, domain.ReviewItem{Text: fmt.Sprintf("google-%02d", i)})
	}

	merged, _ := app.Aggregate([]domain.ScrapeResult{a, b})
	if len(merged) != 30 {
		t.Fatalf("expected exactly 30, got %d", len(merged))
	}
	if merged[0] != "naver-00" || merged[24] != "naver-24" {
		t.Fatalf("first adapter's order not preserved: %v", merged[:25])
	}
	if merged[25] != "google-00" || merged[29] != "google-04" {
		t.Fatalf("invocation order not preserved at the cap: %v", merged[25:])
	}
}

func TestAggregate_FailedAdaptersContributeNothing(t *testing.T) {
	results := []domain.ScrapeResult{
		{Success: false, Source: domain.SourceNaver, Error: "timeout"},
		ok(domain.SourceGoogle, "분위기가 좋아요"),
	}
	merged, combined := app.Aggregate(results)
	if len(merged) != 1 || merged[0] != "분위기가 좋아요" {
		t.Fatalf("unexpected merge: %v", merged)
	}
	if combined != "분위기가 좋아요" {
		t.Fatalf("unexpected combined text: %q", combined)
	}
}

func TestAggregate_AllFailedYieldsEmptyText(t *testing.T) {
	results := []domain.ScrapeResult{
		{Success: false, Source: domain.SourceNaver, Error: "timeout"},
		{Success: false, Source: domain.SourceGoogle, Error: "no result element"},
	}
	merged, combined := app.Aggregate(results)
	if len(merged) != 0 || combined != "" {
		t.Fatalf("expected empty aggregate, got %v / %q", merged, combined)
	}
}

func TestAggregate_CombinedTextTruncated(t *testing.T) {
	long := make([]byte, 0, 9000)
	for i := 0; i < 9000; i++ {
		long = append(long, 'a')
	}
	results := []domain.ScrapeResult{ok(domain.SourceNaver, string(long))}

	_, combined := app.Aggregate(results)
	if n := utf8.RuneCountInString(combined); n != 8000 {
		t.Fatalf("expected 8000-rune budget, got %d", n)
	}
}
