package app_test

import (
	"strings"
	"testing"

	"github.com/jooooonyoung/kotreet-scraper/internal/app"
)

func TestNormalize_StripsFillerAndCollapsesWhitespace(t *testing.T) {
	in := "음식   맛있고!!  직원분들   친절해요ㅋㅋ..."
	got := app.Normalize(in)
	for _, bad := range []string{"ㅋㅋ", "!", "...", "  "} {
		if strings.Contains(got, bad) {
			t.Fatalf("normalized text still contains %q: %q", bad, got)
		}
	}
	if got == "" {
		t.Fatalf("normalization should keep content words")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	cases := []string{
		"",
		"음식이 정말 맛있고 직원분들이 너무 친절해요ㅋㅋ",
		"굉장히 조용하고... 분위기가 좋아요~~",
		"   leading and trailing   ",
		"no korean fillers here at all",
	}
	for _, s := range cases {
		once := app.Normalize(s)
		twice := app.Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalize_FillerOnlyBecomesEmpty(t *testing.T) {
	in := "정말 너무 진짜 ㅋㅋ ㅎㅎ ... !! ~~  "
	if got := app.Normalize(in); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
