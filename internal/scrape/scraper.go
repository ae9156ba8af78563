// Package scrape drives a headless browser through one review platform per
// call. Every platform shares the same routine, parameterized by a Platform
// record.
package scrape

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/observability"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

// Session is the browser surface one scrape call drives.
type Session interface {
	Navigate(url string) error
	ClickAny(selectors []string) (bool, error)
	ScrollBottom() error
	Settle() error
	HTML() (string, error)
	Close()
}

// Launch opens a fresh isolated Session. One session per scrape call,
// released before the call returns.
type Launch func(ctx context.Context) Session

// Scraper runs the uniform scrape routine against one platform.
type Scraper struct {
	platform Platform
	launch   Launch
}

func New(p Platform, launch Launch) *Scraper {
	return &Scraper{platform: p, launch: launch}
}

func (s *Scraper) Source() domain.Source { return s.platform.Source }

// Scrape locates the business page for shopName and extracts its reviews.
// Failures never propagate: the result degrades to success=false with an
// empty review list so the caller treats the platform as having
// contributed nothing.
func (s *Scraper) Scrape(ctx context.Context, shopName string) domain.ScrapeResult {
	start := time.Now()
	res := s.scrape(ctx, shopName)
	observability.ObserveScrape(string(s.platform.Source), res.Success, time.Since(start))

	if res.Success {
		log.Info().
			Str("source", string(s.platform.Source)).
			Str("shop", shopName).
			Int("reviews", len(res.Reviews)).
			Dur("duration", time.Since(start)).
			Msg("scrape ok")
	} else {
		log.Warn().
			Str("source", string(s.platform.Source)).
			Str("shop", shopName).
			Str("error", res.Error).
			Msg("scrape failed")
	}
	return res
}

func (s *Scraper) scrape(ctx context.Context, shopName string) domain.ScrapeResult {
	fail := func(err error) domain.ScrapeResult {
		return domain.ScrapeResult{Source: s.platform.Source, Error: err.Error()}
	}

	sess := s.launch(ctx)
	defer sess.Close()

	if err := sess.Navigate(s.platform.SearchURL(shopName)); err != nil {
		return fail(err)
	}

	// First matching search result is the business page. No match is not an
	// error: some platforms land directly on the place page.
	clicked, err := sess.ClickAny(s.platform.ResultSelectors)
	if err != nil {
		return fail(err)
	}
	if clicked {
		if err := sess.Settle(); err != nil {
			return fail(err)
		}
	}

	// Reviews tab, when the platform has one. Absence is tolerated.
	if len(s.platform.TabSelectors) > 0 {
		clicked, err := sess.ClickAny(s.platform.TabSelectors)
		if err != nil {
			return fail(err)
		}
		if clicked {
			if err := sess.Settle(); err != nil {
				return fail(err)
			}
		}
	}

	for i := 0; i < s.platform.ScrollRounds; i++ {
		if err := sess.ScrollBottom(); err != nil {
			return fail(err)
		}
		if err := sess.Settle(); err != nil {
			return fail(err)
		}
	}

	html, err := sess.HTML()
	if err != nil {
		return fail(err)
	}
	items, err := ExtractReviews(html, s.platform.ReviewSelectors, s.platform.Source)
	if err != nil {
		return fail(err)
	}

	return domain.ScrapeResult{Success: true, Reviews: items, Source: s.platform.Source}
}
