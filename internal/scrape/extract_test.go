package scrape_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
	"github.com/jooooonyoung/kotreet-scraper/internal/scrape"
)

func TestExtractReviews_FiltersShortAndDuplicates(t *testing.T) {
	html := `<html><body>
		<div class="review"><span>분위기가 좋고 직원분들이 정말 친절했어요</span></div>
		<div class="review"><span>맛있어요</span></div>
		<div class="review"><span>분위기가 좋고 직원분들이 정말 친절했어요</span></div>
		<div class="review"><span>   </span></div>
		<div class="review"><span>재방문 의사 있습니다 주차도 편하고 음식이 빨리 나와요</span></div>
	</body></html>`

	items, err := scrape.ExtractReviews(html, []string{".review span"}, domain.SourceNaver)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 reviews, got %d: %+v", len(items), items)
	}
	if items[0].Text != "분위기가 좋고 직원분들이 정말 친절했어요" {
		t.Fatalf("unexpected first review: %q", items[0].Text)
	}
	if items[0].Source != domain.SourceNaver {
		t.Fatalf("source not attached: %+v", items[0])
	}
}

func TestExtractReviews_SelectorOrderAndCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, `<p class="primary">이 집은 정말 괜찮은 곳입니다 후기 번호 %02d</p>`, i)
	}
	sb.WriteString(`<p class="secondary">두 번째 셀렉터에서만 잡히는 후기입니다</p>`)
	sb.WriteString("</body></html>")

	items, err := scrape.ExtractReviews(sb.String(), []string{".primary", ".secondary"}, domain.SourceGoogle)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(items) != 30 {
		t.Fatalf("expected cap of 30, got %d", len(items))
	}
	// DOM order of the first selector must survive
	if !strings.HasSuffix(items[0].Text, "00") || !strings.HasSuffix(items[29].Text, "29") {
		t.Fatalf("DOM order not preserved: first=%q last=%q", items[0].Text, items[29].Text)
	}
}

func TestExtractReviews_SecondSelectorContributes(t *testing.T) {
	html := `<html><body>
		<p class="primary">첫 번째 셀렉터에서 잡히는 충분히 긴 후기</p>
		<p class="secondary">두 번째 셀렉터에서 잡히는 충분히 긴 후기</p>
	</body></html>`

	items, err := scrape.ExtractReviews(html, []string{".primary", ".secondary"}, domain.SourceKakao)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both selectors to contribute, got %d", len(items))
	}
	if items[0].Text != "첫 번째 셀렉터에서 잡히는 충분히 긴 후기" {
		t.Fatalf("selector order not preserved: %q", items[0].Text)
	}
}

func TestExtractReviews_EmptyPage(t *testing.T) {
	items, err := scrape.ExtractReviews("<html><body></body></html>", []string{".review"}, domain.SourceNaver)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no reviews, got %d", len(items))
	}
}
