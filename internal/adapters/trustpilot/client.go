// internal/adapters/trustpilot/client.go
package trustpilot

import (
	"context"
	"encoding/json"
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

const providerName = "trustpilot"

// Client talks to the Trustpilot business-units API. The credential travels
// as an ApiKey header rather than a query-string parameter.
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
	ID       string `json:"id"`
	Consumer struct {
		DisplayName string `json:"displayName"`
	} `json:"consumer"`
	Stars     int    `json:"stars"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	URL       string `json:"url"`
}

type reviewsEnvelope struct {
	Reviews []Review `json:"reviews"`
}

// BusinessReviews fetches the review feed for one business unit.
func (c *Client) BusinessReviews(ctx context.Context, businessID string) ([]Review, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/business-units/%s/reviews", c.base, url.PathEscape(businessID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("ApiKey", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "rsm-air/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(providerName, "reviews", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(providerName, "reviews", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.UpstreamError{
			Provider: providerName,
			Status:   strconv.Itoa(resp.StatusCode),
			Message:  strings.TrimSpace(string(b)),
		}
	}
	var env reviewsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &domain.NetworkError{Provider: providerName, Err: err}
	}
	return env.Reviews, nil
}
