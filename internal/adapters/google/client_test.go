package google_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rsm_air/internal/adapters/google"
	"rsm_air/internal/domain"
)

func TestClient_PlaceDetails_Success(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key not forwarded, got %q", got)
		}
		if got := r.URL.Query().Get("place_id"); got != "place-1" {
			t.Errorf("place_id not forwarded, got %q", got)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Errorf("fields parameter missing")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"result": map[string]any{
				"name":               "RSM Air Conditioning",
				"rating":             4.9,
				"user_ratings_total": 47,
				"url":                "https://maps.google.com/?cid=1",
				"reviews": []map[string]any{
					{"author_name": "Ana", "rating": 5, "text": "great", "relative_time_description": "a week ago", "time": 1700000000},
				},
			},
		})
	}))
	defer ts.Close()

	cl, err := google.New(ts.URL, "test-key", 2*time.Second, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	det, err := cl.PlaceDetails(ctx, "place-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if det.Name != "RSM Air Conditioning" || det.Rating != 4.9 || det.UserRatingsTotal != 47 {
		t.Fatalf("unexpected details: %+v", det)
	}
	if len(det.Reviews) != 1 || det.Reviews[0].AuthorName != "Ana" {
		t.Fatalf("unexpected reviews: %+v", det.Reviews)
	}
	// one attempt per invocation, never more
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected exactly 1 call, got %d", hits)
	}
}

func TestClient_PlaceDetails_ProviderStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with a failing provider status
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":        "OVER_QUERY_LIMIT",
			"error_message": "You have exceeded your daily request quota",
		})
	}))
	defer ts.Close()

	cl, _ := google.New(ts.URL, "test-key", 2*time.Second, 100)
	_, err := cl.PlaceDetails(context.Background(), "place-1")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != "OVER_QUERY_LIMIT" {
		t.Fatalf("status token lost: %q", ue.Status)
	}
}

func TestClient_PlaceDetails_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	cl, _ := google.New(ts.URL, "test-key", 2*time.Second, 100)
	_, err := cl.PlaceDetails(context.Background(), "place-1")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) || ue.Status != "502" {
		t.Fatalf("expected UpstreamError 502, got %v", err)
	}
}

func TestClient_PlaceDetails_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	cl, _ := google.New(ts.URL, "test-key", time.Second, 100)
	_, err := cl.PlaceDetails(context.Background(), "place-1")

	var ne *domain.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestClient_TextSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "rsm air yarra valley" {
			t.Errorf("query not forwarded, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []map[string]any{
				{"place_id": "p1", "name": "RSM Air Conditioning", "formatted_address": "Yarra Valley VIC", "rating": 4.9, "user_ratings_total": 47, "types": []string{"hvac_contractor"}},
				{"place_id": "p2", "name": "Other Air Co", "formatted_address": "Melbourne VIC"},
			},
		})
	}))
	defer ts.Close()

	cl, _ := google.New(ts.URL, "test-key", 2*time.Second, 100)
	places, err := cl.TextSearch(context.Background(), "rsm air yarra valley")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(places) != 2 || places[0].PlaceID != "p1" || places[1].PlaceID != "p2" {
		t.Fatalf("unexpected places: %+v", places)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := google.New("https://example.com", "", time.Second, 5); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
