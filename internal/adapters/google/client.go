// internal/adapters/google/client.go
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"rsm_air/internal/adapters/observability"
	"rsm_air/internal/domain"
)

const providerName = "google"

// Client talks to the Google Places web service. Credentials travel as a
// query-string key; the key is never logged.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, timeout time.Duration, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- wire shapes ----

type Review struct {
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	RelativeTime    string `json:"relative_time_description"`
	Time            int64  `json:"time"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type Details struct {
	Name                 string   `json:"name"`
	Rating               float64  `json:"rating"`
	UserRatingsTotal     int      `json:"user_ratings_total"`
	Reviews              []Review `json:"reviews"`
	URL                  string   `json:"url"`
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
}

type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
}

type detailsEnvelope struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Result       Details `json:"result"`
}

type searchEnvelope struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Results      []Place `json:"results"`
}

// ---- Public API ----

// detailsFields matches the original review-feed request.
const detailsFields = "name,rating,user_ratings_total,reviews,url,formatted_address,formatted_phone_number"

// PlaceDetails fetches the review feed and place metadata for one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (Details, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	q.Set("key", c.key)

	var env detailsEnvelope
	if err := c.get(ctx, "details", c.base+"/details/json?"+q.Encode(), &env); err != nil {
		return Details{}, err
	}
	if env.Status != "OK" {
		return Details{}, &domain.UpstreamError{Provider: providerName, Status: env.Status, Message: env.ErrorMessage}
	}
	return env.Result, nil
}

// TextSearch runs a Places Text Search and returns the raw candidates.
func (c *Client) TextSearch(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.key)

	var env searchEnvelope
	if err := c.get(ctx, "textsearch", c.base+"/textsearch/json?"+q.Encode(), &env); err != nil {
		return nil, err
	}
	if env.Status != "OK" {
		return nil, &domain.UpstreamError{Provider: providerName, Status: env.Status, Message: env.ErrorMessage}
	}
	return env.Results, nil
}

// get performs one rate-limited GET and decodes JSON into out. Exactly one
// attempt is made per invocation; failures surface to the caller untouched.
func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "rsm-air/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(providerName, endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &domain.NetworkError{Provider: providerName, Err: redactKey(err)}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(providerName, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.UpstreamError{
			Provider: providerName,
			Status:   strconv.Itoa(resp.StatusCode),
			Message:  strings.TrimSpace(string(b)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.NetworkError{Provider: providerName, Err: err}
	}
	return nil
}

// redactKey strips the API key from transport errors, which carry the full
// request URL. The raw key must never reach a log line.
func redactKey(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return uerr.Err
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return fmt.Errorf("%s %s: %w", uerr.Op, u.String(), uerr.Err)
}
