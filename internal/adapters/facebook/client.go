// internal/adapters/facebook/client.go
package facebook

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

const providerName = "facebook"

// Client talks to the Facebook Graph API ratings edge.
type Client struct {
	base  string
	hc    *http.Client
	token string
	rl    *rate.Limiter
}

func New(base, token string, timeout time.Duration, rps int) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		hc:    &http.Client{Timeout: timeout},
		token: token,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- wire shapes ----

type Rating struct {
	ID       string `json:"id"`
	Reviewer struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"reviewer"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"review_text"`
	CreatedTime string `json:"created_time"`
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

type ratingsEnvelope struct {
	Data  []Rating    `json:"data"`
	Error *graphError `json:"error"`
}

// PageRatings fetches the ratings edge for one page. Graph signals failure
// through an error object in the body, which maps to UpstreamError with the
// Graph error type as the status token.
func (c *Client) PageRatings(ctx context.Context, pageID string) ([]Rating, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("access_token", c.token)
	q.Set("fields", "reviewer,rating,review_text,created_time")
	u := fmt.Sprintf("%s/%s/ratings?%s", c.base, url.PathEscape(pageID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "rsm-air/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(providerName, "ratings", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.NetworkError{Provider: providerName, Err: redactToken(err)}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(providerName, "ratings", resp.StatusCode, time.Since(start))

	// Graph returns error details in the body even on non-2xx, so decode
	// first and fall back to the HTTP status.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &domain.NetworkError{Provider: providerName, Err: err}
	}
	var env ratingsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &domain.UpstreamError{Provider: providerName, Status: strconv.Itoa(resp.StatusCode)}
		}
		return nil, &domain.NetworkError{Provider: providerName, Err: err}
	}
	if env.Error != nil {
		status := env.Error.Type
		if status == "" {
			status = strconv.Itoa(env.Error.Code)
		}
		return nil, &domain.UpstreamError{Provider: providerName, Status: status, Message: env.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{Provider: providerName, Status: strconv.Itoa(resp.StatusCode)}
	}
	return env.Data, nil
}

// redactToken strips the access token from transport errors, which carry
// the full request URL. The raw token must never reach a log line.
func redactToken(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return uerr.Err
	}
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return fmt.Errorf("%s %s: %w", uerr.Op, u.String(), uerr.Err)
}
