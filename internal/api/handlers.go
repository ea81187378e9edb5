package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/tourguide/internal/guide"
)

var (
	errMissingDestination = errors.New("La destination est obligatoire")
	errBlankDestination   = errors.New("La destination ne peut pas être vide")
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	provider GuideProvider
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(provider GuideProvider, log *slog.Logger) *Handlers {
	return &Handlers{provider: provider, log: log}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRawJSON writes an already encoded JSON document.
func writeRawJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (h *Handlers) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Debug("rejected guide request", "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// GetGuide handles GET /guide/lieu/{destination}?nb= and
// GET /guideplus/lieu/{destination}?nb=.
func (h *Handlers) GetGuide(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r, r.URL.Query().Get("nb"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	h.serve(w, r, req)
}

// GetGuideByPath handles GET /guideplus/lieu/{destination}/{nb}.
func (h *Handlers) GetGuideByPath(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r, chi.URLParam(r, "nb"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	h.serve(w, r, req)
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, req guide.Request) {
	body := h.provider.ObtainItinerary(r.Context(), req.Destination, req.Count)
	h.log.Debug("guide served", "destination", req.Destination, "count", req.Count)
	writeRawJSON(w, http.StatusOK, body)
}

// Health handles GET /health. The service is always able to answer, the
// mode tells whether answers come from the remote model or the fallback.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"mode":   string(h.provider.Mode()),
	})
}

// parseRequest extracts the destination path parameter and the raw count.
// A missing count means 0; negative counts are clamped to 0 and counts
// above guide.MaxCount are rejected.
func parseRequest(r *http.Request, rawCount string) (guide.Request, error) {
	dest, err := destinationParam(r)
	if err != nil {
		return guide.Request{}, err
	}

	count, err := parseCount(rawCount)
	if err != nil {
		return guide.Request{}, err
	}

	return guide.Request{Destination: dest, Count: guide.ClampCount(count)}, nil
}

func destinationParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "destination")
	if raw == "" {
		return "", errMissingDestination
	}
	// chi matches on RawPath when it is set, leaving the segment escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
	}

	dest := strings.TrimSpace(raw)
	if dest == "" {
		return "", errBlankDestination
	}
	return dest, nil
}

func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("nb doit être un entier: %q", raw)
	}
	if n > guide.MaxCount {
		return 0, fmt.Errorf("nb ne peut pas dépasser %d: %d", guide.MaxCount, n)
	}
	return int(n), nil
}
