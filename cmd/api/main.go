package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/ai"
	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/browser"
	server "github.com/jooooonyoung/kotreet-scraper/internal/adapters/http_server"
	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/observability"
	redisad "github.com/jooooonyoung/kotreet-scraper/internal/adapters/redis"
	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/translate"
	"github.com/jooooonyoung/kotreet-scraper/internal/app"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
	"github.com/jooooonyoung/kotreet-scraper/internal/scrape"
	"github.com/jooooonyoung/kotreet-scraper/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// browser-backed scrapers, one per platform
	br := browser.New(cfg.NavTimeout, cfg.SettleDelay)
	launch := func(ctx context.Context) scrape.Session { return br.NewSession(ctx) }

	var scrapers []domain.Scraper
	for _, p := range scrape.Builtin(cfg.ScrollRounds) {
		scrapers = append(scrapers, scrape.New(p, launch))
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("scrape cache enabled")
	}

	llm, err := ai.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("openai client init failed")
	}
	translator, err := translate.New(cfg.TranslateBase, cfg.TranslateKey, cfg.TranslateRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("translate client init failed")
	}

	// services
	scrapeSvc := app.NewScrapeService(scrapers, cache, cfg.CacheTTL)
	analysisSvc := app.NewAnalysisService(llm)
	translationSvc := app.NewTranslationService(translator)

	// http
	srv := server.New(cfg.AllowedOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Scrape:      scrapeSvc,
		Analysis:    analysisSvc,
		Translation: translationSvc,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
