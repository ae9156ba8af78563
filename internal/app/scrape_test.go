package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/jooooonyoung/kotreet-scraper/internal/app"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// fakeScraper returns a scripted result and counts invocations.
type fakeScraper struct {
	src   domain.Source
	res   domain.ScrapeResult
	calls int
	delay time.Duration
}

func (f *fakeScraper) Source() domain.Source { return f.src }
func (f *fakeScraper) Scrape(ctx context.Context, shopName string) domain.ScrapeResult {
	f.calls++
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.res
}

type fakeCache struct{ store map[string]domain.ScrapeResult }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*(dst.(*domain.ScrapeResult)) = v
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.ScrapeResult{}
	}
	c.store[key] = v.(domain.ScrapeResult)
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func naverOK() domain.ScrapeResult {
	return domain.ScrapeResult{
		Success: true,
		Source:  domain.SourceNaver,
		Reviews: []domain.ReviewItem{{Text: "친절하고 맛있는 집이에요", Source: domain.SourceNaver}},
	}
}

func TestScrapeOne_UnknownPlatform(t *testing.T) {
	svc := app.NewScrapeService([]domain.Scraper{&fakeScraper{src: domain.SourceNaver, res: naverOK()}}, nil, 0)
	if _, ok := svc.ScrapeOne(context.Background(), "yelp", "가게"); ok {
		t.Fatalf("expected unknown platform")
	}
}

func TestScrapeOne_CacheMissThenHit(t *testing.T) {
	sc := &fakeScraper{src: domain.SourceNaver, res: naverOK()}
	cache := &fakeCache{}
	svc := app.NewScrapeService([]domain.Scraper{sc}, cache, 10*time.Minute)

	res, ok := svc.ScrapeOne(context.Background(), "naver", "가게")
	if !ok || !res.Success {
		t.Fatalf("unexpected: ok=%v res=%+v", ok, res)
	}
	if sc.calls != 1 {
		t.Fatalf("expected 1 scrape, got %d", sc.calls)
	}

	// second call comes from cache
	res2, _ := svc.ScrapeOne(context.Background(), "naver", "가게")
	if sc.calls != 1 {
		t.Fatalf("expected cached result, scraper called %d times", sc.calls)
	}
	if len(res2.Reviews) != 1 {
		t.Fatalf("unexpected cached reviews: %+v", res2.Reviews)
	}
}

func TestScrapeOne_FailuresNotCached(t *testing.T) {
	sc := &fakeScraper{src: domain.SourceNaver, res: domain.ScrapeResult{Source: domain.SourceNaver, Error: "timeout"}}
	cache := &fakeCache{}
	svc := app.NewScrapeService([]domain.Scraper{sc}, cache, 10*time.Minute)

	svc.ScrapeOne(context.Background(), "naver", "가게")
	svc.ScrapeOne(context.Background(), "naver", "가게")
	if sc.calls != 2 {
		t.Fatalf("failed results must not be cached; scraper called %d times", sc.calls)
	}
}

func TestScrapeAll_DeterministicOrder(t *testing.T) {
	// the slower first adapter must still land in slot 0
	first := &fakeScraper{src: domain.SourceNaver, res: naverOK(), delay: 30 * time.Millisecond}
	second := &fakeScraper{src: domain.SourceGoogle, res: domain.ScrapeResult{Success: true, Source: domain.SourceGoogle}}
	svc := app.NewScrapeService([]domain.Scraper{first, second}, nil, 0)

	results := svc.ScrapeAll(context.Background(), "가게")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Source != domain.SourceNaver || results[1].Source != domain.SourceGoogle {
		t.Fatalf("registration order not preserved: %v %v", results[0].Source, results[1].Source)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("each adapter must run exactly once")
	}
}
