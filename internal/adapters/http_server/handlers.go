// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jooooonyoung/kotreet-scraper/internal/app"
	"github.com/jooooonyoung/kotreet-scraper/internal/domain"
)

type Handlers struct {
	Scrape      *app.ScrapeService
	Analysis    *app.AnalysisService
	Translation *app.TranslationService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Kotreet Scraper API"})
	})
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/api/scrape", h.scrapeAll)
	s.mux.Post("/api/scrape/{platform}", h.scrapeOne)
	s.mux.Post("/api/analyze", h.analyze)
	s.mux.Post("/api/analyze-manual", h.analyzeManual)
	s.mux.Post("/api/reanalyze", h.reanalyze)
	s.mux.Post("/api/translate", h.translate)
	s.mux.Post("/api/generate-description", h.generateDescription)
}

// ---- response helpers ----

// Failure conventions, applied uniformly:
//   - missing/invalid request fields -> 400 {"error": msg}
//   - scrape-run failures            -> 200 {"success":false, ...} (an
//     adapter failing is not a request failure)
//   - collaborator/parse failures    -> 500 {"success":false, "error": msg}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// writeServiceError maps service errors onto the uniform conventions.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, app.ErrValidation) {
		writeBadRequest(w, err.Error())
		return
	}
	writeFailure(w, http.StatusInternalServerError, err.Error())
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ---- scraping ----

type scrapeRequest struct {
	ShopName string `json:"shopName"`
}

type scrapeResponse struct {
	Success      bool          `json:"success"`
	Reviews      []string      `json:"reviews"`
	CombinedText string        `json:"combinedText,omitempty"`
	Source       domain.Source `json:"source"`
	Error        string        `json:"error,omitempty"`
}

func (h *Handlers) scrapeOne(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")

	var req scrapeRequest
	if err := decode(r, &req); err != nil || req.ShopName == "" {
		writeBadRequest(w, "shopName required")
		return
	}

	res, known := h.Scrape.ScrapeOne(r.Context(), platform, req.ShopName)
	if !known {
		writeBadRequest(w, "unknown platform: "+platform)
		return
	}

	texts := res.Texts()
	writeJSON(w, http.StatusOK, scrapeResponse{
		Success:      res.Success,
		Reviews:      texts,
		CombinedText: app.Normalize(strings.Join(texts, " ")),
		Source:       res.Source,
		Error:        res.Error,
	})
}

type scrapeAllResponse struct {
	Success      bool                   `json:"success"`
	Reviews      []string               `json:"reviews"`
	CombinedText string                 `json:"combinedText"`
	Sources      map[domain.Source]bool `json:"sources"`
}

func (h *Handlers) scrapeAll(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := decode(r, &req); err != nil || req.ShopName == "" {
		writeBadRequest(w, "shopName required")
		return
	}

	results := h.Scrape.ScrapeAll(r.Context(), req.ShopName)
	merged, combined := app.Aggregate(results)

	sources := make(map[domain.Source]bool, len(results))
	for _, res := range results {
		sources[res.Source] = res.Success
	}

	writeJSON(w, http.StatusOK, scrapeAllResponse{
		Success:      true,
		Reviews:      merged,
		CombinedText: app.Normalize(combined),
		Sources:      sources,
	})
}

// ---- analysis ----

type analyzeRequest struct {
	ReviewText string          `json:"reviewText"`
	Category   domain.Category `json:"category"`
	Indicators []string        `json:"indicators"`
}

func (h *Handlers) analyze(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, false)
}

// analyze-manual takes raw user-pasted text, so it is normalized first.
func (h *Handlers) analyzeManual(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, true)
}

func (h *Handlers) runAnalysis(w http.ResponseWriter, r *http.Request, normalize bool) {
	var req analyzeRequest
	if err := decode(r, &req); err != nil || req.ReviewText == "" || req.Category == "" || len(req.Indicators) == 0 {
		writeBadRequest(w, "reviewText, category, and 10 indicators required")
		return
	}

	text := req.ReviewText
	if normalize {
		text = app.Normalize(text)
	}

	result, err := h.Analysis.Analyze(r.Context(), domain.AnalysisRequest{
		ReviewText: text,
		Category:   req.Category,
		Indicators: req.Indicators,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "analysis": result})
}

type reanalyzeRequest struct {
	ReviewText       string                `json:"reviewText"`
	Category         domain.Category       `json:"category"`
	Indicators       []string              `json:"indicators"`
	PreviousAnalysis domain.AnalysisResult `json:"previousAnalysis"`
	Feedback         string                `json:"feedback"`
}

func (h *Handlers) reanalyze(w http.ResponseWriter, r *http.Request) {
	var req reanalyzeRequest
	if err := decode(r, &req); err != nil || req.ReviewText == "" || req.Feedback == "" {
		writeBadRequest(w, "reviewText and feedback required")
		return
	}

	result, err := h.Analysis.Reanalyze(r.Context(), domain.AnalysisRequest{
		ReviewText: req.ReviewText,
		Category:   req.Category,
		Indicators: req.Indicators,
	}, req.PreviousAnalysis, req.Feedback)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "analysis": result})
}

// ---- translation ----

type translateRequest struct {
	SummaryKo     string   `json:"summaryKo"`
	DescriptionKo string   `json:"descriptionKo"`
	Languages     []string `json:"languages"`
}

func (h *Handlers) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decode(r, &req); err != nil || req.SummaryKo == "" || len(req.Languages) == 0 {
		writeBadRequest(w, "summaryKo and languages required")
		return
	}

	bundle, err := h.Translation.Translate(r.Context(), req.SummaryKo, req.DescriptionKo, req.Languages)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "translations": bundle})
}

// ---- description generation ----

type generateDescriptionRequest struct {
	ShopName   string          `json:"shopName"`
	Category   domain.Category `json:"category"`
	ReviewText string          `json:"reviewText"`
}

func (h *Handlers) generateDescription(w http.ResponseWriter, r *http.Request) {
	var req generateDescriptionRequest
	if err := decode(r, &req); err != nil || req.ShopName == "" {
		writeBadRequest(w, "shopName required")
		return
	}

	desc, err := h.Analysis.GenerateDescription(r.Context(), req.ShopName, req.Category, req.ReviewText)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "descriptionKo": desc})
}
