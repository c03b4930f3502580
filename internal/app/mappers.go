package app

import (
	"fmt"
	"strconv"
	"time"

	"rsm_air/internal/adapters/facebook"
	"rsm_air/internal/adapters/google"
	"rsm_air/internal/adapters/trustpilot"
	"rsm_air/internal/domain"
)

// Normalization of provider wire shapes into domain records. Each mapper is
// a pure 1:1 transform preserving provider order; either the full set maps
// or the caller already failed.

func mapGoogleSummary(placeID string, d google.Details) domain.PlaceSummary {
	out := domain.PlaceSummary{
		Name:                 d.Name,
		AverageRating:        d.Rating,
		TotalRatingCount:     d.UserRatingsTotal,
		PlaceID:              placeID,
		CanonicalURL:         d.URL,
		FormattedAddress:     d.FormattedAddress,
		FormattedPhoneNumber: d.FormattedPhoneNumber,
		Reviews:              make([]domain.ReviewRecord, 0, len(d.Reviews)),
	}
	if out.CanonicalURL == "" {
		out.CanonicalURL = "https://www.google.com/maps/place/?q=place_id:" + placeID
	}
	for i, r := range d.Reviews {
		id := strconv.FormatInt(r.Time, 10)
		if r.Time == 0 {
			id = fmt.Sprintf("google-%d", i)
		}
		out.Reviews = append(out.Reviews, domain.ReviewRecord{
			ID:         id,
			AuthorName: r.AuthorName,
			// Google ratings pass through unmodified.
			Rating:          r.Rating,
			Text:            r.Text,
			TimeDescription: r.RelativeTime,
			Platform:        domain.PlatformGoogle,
			SourceURL:       r.AuthorURL,
		})
	}
	return out
}

func mapPlaceResults(places []google.Place) []domain.PlaceResult {
	out := make([]domain.PlaceResult, 0, len(places))
	for _, p := range places {
		out = append(out, domain.PlaceResult{
			PlaceID:          p.PlaceID,
			Name:             p.Name,
			FormattedAddress: p.FormattedAddress,
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
			Types:            p.Types,
		})
	}
	return out
}

// mapFacebookReviews normalizes Graph ratings. A recommendation without a
// star value carries rating 0 on the wire and maps to 5; supplied values are
// clamped to 1..5. The source URL points at the business page, not the
// individual review, because Graph exposes no per-review permalink.
func mapFacebookReviews(ratings []facebook.Rating, pageURL string) []domain.ReviewRecord {
	out := make([]domain.ReviewRecord, 0, len(ratings))
	for i, r := range ratings {
		author := r.Reviewer.Name
		if author == "" {
			author = "Facebook User"
		}
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("facebook-%d", i)
		}
		rating := r.Rating
		if rating == 0 {
			rating = 5
		}
		out = append(out, domain.ReviewRecord{
			ID:              id,
			AuthorName:      author,
			Rating:          clampRating(rating),
			Text:            r.ReviewText,
			TimeDescription: formatDate(r.CreatedTime),
			Platform:        domain.PlatformFacebook,
			SourceURL:       pageURL,
		})
	}
	return out
}

func mapTrustpilotReviews(reviews []trustpilot.Review) []domain.ReviewRecord {
	out := make([]domain.ReviewRecord, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, domain.ReviewRecord{
			ID:              r.ID,
			AuthorName:      r.Consumer.DisplayName,
			Rating:          clampRating(r.Stars),
			Text:            r.Text,
			TimeDescription: formatDate(r.CreatedAt),
			Platform:        domain.PlatformTrustpilot,
			SourceURL:       r.URL,
		})
	}
	return out
}

func clampRating(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// timeLayouts covers Graph's offset-without-colon timestamps and RFC3339
// used by Trustpilot.
var timeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// formatDate renders a provider timestamp as a display date. Unparseable
// values pass through untouched rather than dropping the review.
func formatDate(ts string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return ts
}
