// internal/adapters/profile/scraper.go
package profile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"rsm_air/internal/adapters/observability"
	"rsm_air/internal/domain"
)

const providerName = "gmaps"

// Scraper extracts aggregate data (name, star rating, review count) from the
// public business page. It never extracts or synthesizes individual reviews:
// when the page cannot be parsed the caller gets a typed error, not
// placeholder data.
type Scraper struct {
	hc      *http.Client
	pageURL string
}

func New(pageURL string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	// pageURL is usually a short share link; the client follows the redirect.
	return &Scraper{
		hc:      &http.Client{Timeout: timeout},
		pageURL: pageURL,
	}
}

var (
	ratingRe = regexp.MustCompile(`(\d\.\d)\s*star`)
	countRe  = regexp.MustCompile(`(\d[\d,]*)\s*review`)
)

// Fetch downloads and parses the business page.
func (s *Scraper) Fetch(ctx context.Context) (domain.BusinessProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return domain.BusinessProfile{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; rsm-air/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-AU,en;q=0.5")

	start := time.Now()
	resp, err := s.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(providerName, "profile", 0, time.Since(start))
		if ctx.Err() != nil {
			return domain.BusinessProfile{}, ctx.Err()
		}
		return domain.BusinessProfile{}, &domain.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(providerName, "profile", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.BusinessProfile{}, &domain.UpstreamError{
			Provider: providerName,
			Status:   strconv.Itoa(resp.StatusCode),
		}
	}

	// resp.Request.URL is the final URL after following the share-link
	// redirect.
	finalURL := s.pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	p, err := extract(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return domain.BusinessProfile{}, err
	}
	p.SourceURL = finalURL
	return p, nil
}

// extract parses the page body. Exposed internally so tests can feed canned
// HTML without a round-trip.
func extract(r io.Reader, contentType string) (domain.BusinessProfile, error) {
	// Decode to UTF-8 if needed
	buf := new(bytes.Buffer)
	_, _ = io.Copy(buf, io.LimitReader(r, 4<<20))
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return domain.BusinessProfile{}, &domain.NetworkError{Provider: providerName, Err: err}
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return domain.BusinessProfile{}, &domain.NetworkError{Provider: providerName, Err: err}
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		name = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	}
	if name == "" {
		name = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// Rating and count live in aria-labels on the knowledge panel; scan
	// those first and fall back over the whole text.
	var rating float64
	var count int
	doc.Find("[aria-label]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		label, _ := sel.Attr("aria-label")
		if rating == 0 {
			if m := ratingRe.FindStringSubmatch(label); m != nil {
				rating, _ = strconv.ParseFloat(m[1], 64)
			}
		}
		if count == 0 {
			if m := countRe.FindStringSubmatch(label); m != nil {
				count, _ = strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			}
		}
		return rating == 0 || count == 0
	})
	if rating == 0 || count == 0 {
		text := doc.Text()
		if rating == 0 {
			if m := ratingRe.FindStringSubmatch(text); m != nil {
				rating, _ = strconv.ParseFloat(m[1], 64)
			}
		}
		if count == 0 {
			if m := countRe.FindStringSubmatch(text); m != nil {
				count, _ = strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			}
		}
	}

	if name == "" || rating == 0 {
		return domain.BusinessProfile{}, &domain.UpstreamError{
			Provider: providerName,
			Status:   "PARSE_FAILED",
			Message:  fmt.Sprintf("page markup did not yield a profile (name=%q)", name),
		}
	}
	return domain.BusinessProfile{Name: name, Rating: rating, ReviewCount: count}, nil
}
