package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rsm_air/internal/adapters/google"
	httpserver "rsm_air/internal/adapters/http_server"
	"rsm_air/internal/app"
	"rsm_air/internal/domain"
)

type stubGoogle struct {
	details google.Details
	err     error
}

func (s *stubGoogle) PlaceDetails(ctx context.Context, placeID string) (google.Details, error) {
	return s.details, s.err
}

func (s *stubGoogle) TextSearch(ctx context.Context, query string) ([]google.Place, error) {
	return nil, s.err
}

func newTestServer(deps app.Deps) *httptest.Server {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{R: app.NewReviewService(deps)})
	return httptest.NewServer(srv.Mux())
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestGoogleReviews_OKWithCacheHeaders(t *testing.T) {
	stub := &stubGoogle{details: google.Details{
		Name:             "RSM Air Conditioning",
		Rating:           4.9,
		UserRatingsTotal: 47,
		Reviews:          []google.Review{{AuthorName: "Ana", Rating: 5, Time: 1700000000}},
	}}
	ts := newTestServer(app.Deps{Google: stub, GooglePlaceID: "place-1"})
	defer ts.Close()

	var sum domain.PlaceSummary
	resp := getJSON(t, ts.URL+"/api/google-reviews", &sum)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Cache-Control"); got != "public, s-maxage=3600, stale-while-revalidate=86400" {
		t.Fatalf("cache-control: %q", got)
	}
	if sum.Name != "RSM Air Conditioning" || len(sum.Reviews) != 1 {
		t.Fatalf("unexpected body: %+v", sum)
	}
}

func TestGoogleReviews_ConfigMissingIs500(t *testing.T) {
	ts := newTestServer(app.Deps{}) // nothing configured
	defer ts.Close()

	var out struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	resp := getJSON(t, ts.URL+"/api/google-reviews", &out)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if out.Error == "" {
		t.Fatalf("error field missing")
	}
}

func TestGoogleReviews_UpstreamStatusInDetails(t *testing.T) {
	stub := &stubGoogle{err: &domain.UpstreamError{Provider: "google", Status: "OVER_QUERY_LIMIT"}}
	ts := newTestServer(app.Deps{Google: stub, GooglePlaceID: "place-1"})
	defer ts.Close()

	var out struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	resp := getJSON(t, ts.URL+"/api/google-reviews", &out)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if out.Details != "OVER_QUERY_LIMIT" {
		t.Fatalf("provider status token must surface, got %q", out.Details)
	}
}

func TestSearchPlaces_RequiresQuery(t *testing.T) {
	ts := newTestServer(app.Deps{Google: &stubGoogle{}})
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/api/search-places", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestInstallations_FilterAndETag(t *testing.T) {
	ts := newTestServer(app.Deps{})
	defer ts.Close()

	var out struct {
		Installations []struct {
			ID       int    `json:"id"`
			Category string `json:"category"`
		} `json:"installations"`
		Counts map[string]int `json:"counts"`
	}
	resp := getJSON(t, ts.URL+"/api/installations?category=commercial", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if len(out.Installations) != 2 {
		t.Fatalf("expected 2 commercial entries, got %d", len(out.Installations))
	}
	for _, ins := range out.Installations {
		if ins.Category != "commercial" {
			t.Fatalf("wrong category: %+v", ins)
		}
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("ETag missing")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/installations?category=commercial", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("second GET: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", resp2.StatusCode)
	}
}

func TestInstallations_UnknownCategory(t *testing.T) {
	ts := newTestServer(app.Deps{})
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/api/installations?category=plumbing", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestCuratedReviews_ExplicitlyLabeled(t *testing.T) {
	ts := newTestServer(app.Deps{})
	defer ts.Close()

	var out struct {
		Reviews []domain.ReviewRecord `json:"reviews"`
		Curated bool                  `json:"curated"`
	}
	resp := getJSON(t, ts.URL+"/api/curated-reviews", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if !out.Curated {
		t.Fatalf("curated flag must be set")
	}
	for _, r := range out.Reviews {
		if r.Platform != domain.PlatformManual {
			t.Fatalf("curated reviews must carry the manual platform: %+v", r)
		}
	}
}

func TestAllReviews_Always200(t *testing.T) {
	stub := &stubGoogle{err: &domain.UpstreamError{Provider: "google", Status: "REQUEST_DENIED"}}
	ts := newTestServer(app.Deps{Google: stub, GooglePlaceID: "place-1"})
	defer ts.Close()

	var out struct {
		Platforms []app.PlatformFeed `json:"platforms"`
	}
	resp := getJSON(t, ts.URL+"/api/reviews", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("multi-platform feed must degrade, not 500: %d", resp.StatusCode)
	}
	if len(out.Platforms) != 1 || out.Platforms[0].Error == "" {
		t.Fatalf("expected one failed google section: %+v", out.Platforms)
	}
}
