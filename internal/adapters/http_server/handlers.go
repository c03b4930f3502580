// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"rsm_air/internal/app"
	"rsm_air/internal/domain"
	"rsm_air/internal/gallery"
)

type Handlers struct{ R *app.ReviewService }

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/google-reviews", h.googleReviews)
	s.mux.Get("/api/facebook-reviews", h.facebookReviews)
	s.mux.Get("/api/trustpilot-reviews", h.trustpilotReviews)
	s.mux.Get("/api/search-places", h.searchPlaces)
	s.mux.Get("/api/reviews", h.allReviews)
	s.mux.Get("/api/curated-reviews", h.curatedReviews)
	s.mux.Get("/api/installations", h.installations)
	s.mux.Get("/api/business-profile", h.businessProfile)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeProviderError maps the aggregator's error taxonomy onto one 500
// response shape. Upstream status tokens travel in the details field;
// credentials never appear in either field or the log line.
func writeProviderError(w http.ResponseWriter, what string, err error) {
	out := apiError{Error: "Failed to fetch " + what}
	var ue *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrConfigMissing):
		out.Error = what + " not configured"
	case errors.As(err, &ue):
		out.Details = ue.Status
		if ue.Message != "" {
			out.Details += ": " + ue.Message
		}
	}
	log.Error().Err(err).Str("what", what).Msg("provider fetch failed")
	writeJSON(w, http.StatusInternalServerError, out)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) googleReviews(w http.ResponseWriter, r *http.Request) {
	sum, err := h.R.GoogleReviews(r.Context())
	if err != nil {
		writeProviderError(w, "Google reviews", err)
		return
	}
	// Review content moves slowly and the provider is rate- and
	// cost-limited, so let intermediaries hold the response.
	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=86400")
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handlers) facebookReviews(w http.ResponseWriter, r *http.Request) {
	revs, err := h.R.FacebookReviews(r.Context())
	if err != nil {
		writeProviderError(w, "Facebook reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": revs})
}

func (h *Handlers) trustpilotReviews(w http.ResponseWriter, r *http.Request) {
	revs, err := h.R.TrustpilotReviews(r.Context())
	if err != nil {
		writeProviderError(w, "Trustpilot reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": revs})
}

func (h *Handlers) searchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Query parameter is required"})
		return
	}
	results, err := h.R.SearchPlaces(r.Context(), query)
	if err != nil {
		writeProviderError(w, "place search", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handlers) allReviews(w http.ResponseWriter, r *http.Request) {
	// per-provider degradation; this endpoint never 500s as a whole
	feeds := h.R.AllReviews(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"platforms": feeds})
}

func (h *Handlers) curatedReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews": h.R.CuratedReviews(),
		"curated": true,
	})
}

func (h *Handlers) installations(w http.ResponseWriter, r *http.Request) {
	cat := gallery.CategoryAll
	if v := r.URL.Query().Get("category"); v != "" {
		cat = gallery.Category(v)
		if !gallery.ValidCategory(cat) {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "unknown category"})
			return
		}
	}
	resp := map[string]any{
		"installations": gallery.Filter(cat),
		"counts":        gallery.Counts(),
	}

	etag, body := calcETagAndBody(resp)
	// the catalog is compiled in, so a matching ETag short-circuits
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write installations body")
	}
}

func (h *Handlers) businessProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.R.BusinessProfile(r.Context())
	if err != nil {
		writeProviderError(w, "business profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
