package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// ScrapeService runs platform adapters, optionally caching their results.
// The scraper slice order is the fixed invocation (and merge) order.
type ScrapeService struct {
	scrapers []domain.Scraper
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewScrapeService wires the adapters. cache may be nil, which keeps the
// service fully stateless.
func NewScrapeService(scrapers []domain.Scraper, cache domain.Cache, ttl time.Duration) *ScrapeService {
	return &ScrapeService{scrapers: scrapers, cache: cache, cacheTTL: ttl}
}

// Sources lists the registered platforms in invocation order.
func (s *ScrapeService) Sources() []domain.Source {
	out := make([]domain.Source, 0, len(s.scrapers))
	for _, sc := range s.scrapers {
		out = append(out, sc.Source())
	}
	return out
}

// ScrapeOne runs a single platform adapter. The second return value is
// false when the platform name is unknown.
func (s *ScrapeService) ScrapeOne(ctx context.Context, platform, shopName string) (domain.ScrapeResult, bool) {
	for _, sc := range s.scrapers {
		if string(sc.Source()) == platform {
			return s.scrapeCached(ctx, sc, shopName), true
		}
	}
	return domain.ScrapeResult{}, false
}

// ScrapeAll fans out over every platform concurrently. The result slice is
// indexed by registration order, so the merge order downstream stays
// deterministic regardless of which adapter finishes first.
func (s *ScrapeService) ScrapeAll(ctx context.Context, shopName string) []domain.ScrapeResult {
	results := make([]domain.ScrapeResult, len(s.scrapers))

	g, gctx := errgroup.WithContext(ctx)
	for i, sc := range s.scrapers {
		i, sc := i, sc
		g.Go(func() error {
			// adapters degrade internally and never error
			results[i] = s.scrapeCached(gctx, sc, shopName)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *ScrapeService) scrapeCached(ctx context.Context, sc domain.Scraper, shopName string) domain.ScrapeResult {
	key := fmt.Sprintf("scrape:%s:%s", sc.Source(), shopName)
	if s.cache != nil {
		var cached domain.ScrapeResult
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	res := sc.Scrape(ctx, shopName)

	// only successful results are worth replaying
	if s.cache != nil && res.Success {
		_ = s.cache.Set(ctx, key, res, int(s.cacheTTL.Seconds()))
	}
	return res
}
