package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"brandsight"

	"github.com/go-playground/validator/v10"
)

// Handler serves the inbound insights API:
//
//	POST /fetch-insights  {"website_url": "..."}  ->  BrandInsights
//	GET  /                welcome message
//
// Extraction failures inside the pipeline degrade to empty fields; only
// an unreachable homepage (404) or an unexpected internal error (500)
// produce a failed response.
type Handler struct {
	insights brandsight.InsightService
	validate *validator.Validate
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewHandler creates a new Handler.
func NewHandler(insights brandsight.InsightService, logger *slog.Logger) *Handler {
	h := &Handler{
		insights: insights,
		validate: validator.New(),
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("POST /fetch-insights", h.handleFetchInsights)
	h.mux.HandleFunc("GET /{$}", h.handleRoot)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the brandsight API. POST a website URL to /fetch-insights.",
	})
}

func (h *Handler) handleFetchInsights(w http.ResponseWriter, r *http.Request) {
	var req brandsight.FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "website_url must be a valid absolute URL")
		return
	}

	insights, err := h.insights.FetchInsights(r.Context(), req.WebsiteURL)
	if err != nil {
		switch brandsight.ErrorCode(err) {
		case brandsight.ENOTFOUND:
			writeError(w, http.StatusNotFound, "website not found or could not be accessed")
		case brandsight.EINVALID:
			writeError(w, http.StatusBadRequest, brandsight.ErrorMessage(err))
		default:
			h.logger.Error("fetch insights", "url", req.WebsiteURL, "err", err)
			writeError(w, http.StatusInternalServerError, "an internal error occurred")
		}
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
