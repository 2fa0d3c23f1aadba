package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/placegen/pkg/placename"
)

// Listing-mode bounds for the "count" query parameter.
const (
	defaultCount = 20
	maxCount     = 500
)

// Handler serves the place-name endpoints over a shared immutable dataset.
type Handler struct {
	ds  *placename.Dataset
	log *slog.Logger
}

// NewHandler returns a Handler over the given dataset. The dataset must be
// a successfully parsed one; the handler treats it as read-only.
func NewHandler(ds *placename.Dataset, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{ds: ds, log: log}
}

// Router assembles the chi router with the service middleware chain.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(h.log))

	r.Get("/", h.index)
	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/names", h.names)
		r.Get("/stats", h.stats)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not_found", "unknown API route")
		})
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

// requestGenerator builds a per-request generator over the shared pools
// with the request's threshold overrides applied. Overrides stay local to
// this request; SetThresholds clamps them to [0,1].
func (h *Handler) requestGenerator(r *http.Request) *placename.Generator {
	gen := placename.New(placename.WithDataset(h.ds))
	th := h.ds.Thresholds
	if v, ok := queryFloat(r, "prefix"); ok {
		th.Prefix = v
	}
	if v, ok := queryFloat(r, "suffix"); ok {
		th.Suffix = v
	}
	if v, ok := queryFloat(r, "double"); ok {
		th.Double = v
	}
	gen.SetThresholds(th.Prefix, th.Suffix, th.Double)
	return gen
}

// names implements listing mode: generate "count" names with optional
// per-request threshold overrides.
func (h *Handler) names(w http.ResponseWriter, r *http.Request) {
	count := clampInt(queryInt(r, "count", defaultCount), 1, maxCount)
	gen := h.requestGenerator(r)

	names := make([]string, count)
	for i := range names {
		names[i] = gen.Generate()
	}

	respondData(w, names, map[string]any{
		"count":      count,
		"thresholds": gen.Thresholds(),
	})
}

// stats implements statistics mode.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	gen := placename.New(placename.WithDataset(h.ds))
	respondData(w, gen.Stats(), nil)
}

// queryInt parses an integer query parameter, falling back on absent or
// malformed values.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// queryFloat parses a float query parameter; ok is false when the parameter
// is absent or malformed.
func queryFloat(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
