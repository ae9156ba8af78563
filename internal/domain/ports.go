package domain

import "context"

// Scraper is one platform-specific review adapter. Scrape never returns an
// error: any failure degrades to a ScrapeResult with Success=false so a
// broken platform contributes nothing instead of failing the request.
type Scraper interface {
	Source() Source
	Scrape(ctx context.Context, shopName string) ScrapeResult
}

// LanguageModel is the generative-model collaborator. It takes a prompt and
// returns free text which is expected (not guaranteed) to contain JSON.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Translator is the text-translation collaborator.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Cache is an optional key/value store for idempotent scrape results.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
