package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/jooooonyoung/kotreet-scraper/internal/adapters/redis"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := domain.ScrapeResult{
		Success: true,
		Source:  domain.SourceNaver,
		Reviews: []domain.ReviewItem{{Text: "분위기가 좋고 직원분들이 친절했어요", Source: domain.SourceNaver}},
	}
	if err := c.Set(ctx, "scrape:naver:테스트식당", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out domain.ScrapeResult
	ok, err := c.Get(ctx, "scrape:naver:테스트식당", &out)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !out.Success || len(out.Reviews) != 1 || out.Reviews[0].Text != in.Reviews[0].Text {
		t.Fatalf("unexpected cached value: %+v", out)
	}

	if err := c.Del(ctx, "scrape:naver:테스트식당"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, err = c.Get(ctx, "scrape:naver:테스트식당", &out)
	if err != nil {
		t.Fatalf("Get after Del: %v", err)
	}
	if ok {
		t.Fatalf("expected miss after Del")
	}
}
