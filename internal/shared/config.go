package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// CORS allow-list, comma separated in the environment.
	AllowedOrigins []string

	// LLM collaborator.
	OpenAIKey   string
	OpenAIModel string
	OpenAIRPS   int

	// Translation collaborator.
	TranslateBase string
	TranslateKey  string
	TranslateRPS  int

	// Optional scrape-result cache. Empty RedisAddr disables it.
	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration

	// Browser automation tunables.
	NavTimeout   time.Duration
	SettleDelay  time.Duration
	ScrollRounds int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":3001"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		AllowedOrigins: splitCSV(env("ALLOWED_ORIGINS", "https://kotreet.com,http://localhost:3000")),
		OpenAIKey:      env("OPENAI_API_KEY", ""),
		OpenAIModel:    env("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIRPS:      atoi("OPENAI_RPS", 2),
		TranslateBase:  env("TRANSLATE_BASE_URL", "https://translation.googleapis.com/language/translate/v2"),
		TranslateKey:   env("TRANSLATE_API_KEY", ""),
		TranslateRPS:   atoi("TRANSLATE_RPS", 5),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		NavTimeout:     time.Duration(atoi("NAV_TIMEOUT_SECONDS", 30)) * time.Second,
		SettleDelay:    time.Duration(atoi("SETTLE_DELAY_MS", 2000)) * time.Millisecond,
		ScrollRounds:   atoi("SCROLL_ROUNDS", 3),
	}
	if c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty")
	}
	if c.TranslateKey == "" {
		log.Warn().Msg("TRANSLATE_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
