package domain

// Platform identifies the origin of a review.
type Platform string

const (
	PlatformGoogle     Platform = "google"
	PlatformFacebook   Platform = "facebook"
	PlatformTrustpilot Platform = "trustpilot"
	// PlatformManual marks curated testimonials; never mixed into live feeds.
	PlatformManual Platform = "manual"
)

// ReviewRecord is the provider-agnostic review shape. IDs are unique only
// within one provider's result set.
type ReviewRecord struct {
	ID              string   `json:"id"`
	AuthorName      string   `json:"author_name"`
	Rating          int      `json:"rating"`
	Text            string   `json:"text"`
	TimeDescription string   `json:"time_description"`
	Platform        Platform `json:"platform"`
	SourceURL       string   `json:"source_url,omitempty"`
}

// PlaceSummary is the aggregated business metadata returned alongside the
// Google review feed. Reviews keep provider order; they are never re-sorted.
type PlaceSummary struct {
	Name                 string         `json:"name"`
	AverageRating        float64        `json:"average_rating"`
	TotalRatingCount     int            `json:"total_rating_count"`
	Reviews              []ReviewRecord `json:"reviews"`
	PlaceID              string         `json:"place_id"`
	CanonicalURL         string         `json:"url"`
	FormattedAddress     string         `json:"formatted_address,omitempty"`
	FormattedPhoneNumber string         `json:"formatted_phone_number,omitempty"`
}

// PlaceResult is one simplified Text Search candidate.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types,omitempty"`
}

// BusinessProfile is the aggregate data the admin profile scraper extracts
// from the public business page. Individual reviews are never scraped.
type BusinessProfile struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	SourceURL   string  `json:"source_url"`
}
