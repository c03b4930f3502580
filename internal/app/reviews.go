package app

import (
	"context"
	"errors"
	"fmt"

	"rsm_air/internal/adapters/facebook"
	"rsm_air/internal/adapters/google"
	"rsm_air/internal/adapters/observability"
	"rsm_air/internal/adapters/trustpilot"
	"rsm_air/internal/domain"
)

// Provider ports. Clients return their provider's wire shapes; all
// normalization into domain records happens in this package (mappers.go).

type GooglePlacesAPI interface {
	PlaceDetails(ctx context.Context, placeID string) (google.Details, error)
	TextSearch(ctx context.Context, query string) ([]google.Place, error)
}

type FacebookGraphAPI interface {
	PageRatings(ctx context.Context, pageID string) ([]facebook.Rating, error)
}

type TrustpilotAPI interface {
	BusinessReviews(ctx context.Context, businessID string) ([]trustpilot.Review, error)
}

type ProfileSource interface {
	Fetch(ctx context.Context) (domain.BusinessProfile, error)
}

// Deps carries the provider clients and their identifiers. A nil client or
// empty identifier leaves that provider unconfigured; its operations fail
// with ErrConfigMissing without touching the network.
type Deps struct {
	Google        GooglePlacesAPI
	GooglePlaceID string

	Facebook        FacebookGraphAPI
	FacebookPageID  string
	FacebookPageURL string

	Trustpilot           TrustpilotAPI
	TrustpilotBusinessID string

	Profile ProfileSource
}

// ReviewService exposes one normalized review feed per provider. Each fetch
// is self-contained: one attempt, no retries, no shared state between
// invocations, results discarded after the response.
type ReviewService struct {
	d Deps
}

func NewReviewService(d Deps) *ReviewService {
	return &ReviewService{d: d}
}

// GoogleReviews returns the place summary with the review feed mapped 1:1
// in provider order.
func (s *ReviewService) GoogleReviews(ctx context.Context) (domain.PlaceSummary, error) {
	if s.d.Google == nil || s.d.GooglePlaceID == "" {
		observability.ObserveProviderError("google", "config_missing")
		return domain.PlaceSummary{}, fmt.Errorf("google places: %w", domain.ErrConfigMissing)
	}
	det, err := s.d.Google.PlaceDetails(ctx, s.d.GooglePlaceID)
	if err != nil {
		observability.ObserveProviderError("google", errKind(err))
		return domain.PlaceSummary{}, err
	}
	return mapGoogleSummary(s.d.GooglePlaceID, det), nil
}

// SearchPlaces runs the admin Place ID lookup. Only the API key is required;
// the configured place identifier plays no part.
func (s *ReviewService) SearchPlaces(ctx context.Context, query string) ([]domain.PlaceResult, error) {
	if s.d.Google == nil {
		observability.ObserveProviderError("google", "config_missing")
		return nil, fmt.Errorf("google places: %w", domain.ErrConfigMissing)
	}
	places, err := s.d.Google.TextSearch(ctx, query)
	if err != nil {
		observability.ObserveProviderError("google", errKind(err))
		return nil, err
	}
	return mapPlaceResults(places), nil
}

func (s *ReviewService) FacebookReviews(ctx context.Context) ([]domain.ReviewRecord, error) {
	if s.d.Facebook == nil || s.d.FacebookPageID == "" {
		observability.ObserveProviderError("facebook", "config_missing")
		return nil, fmt.Errorf("facebook graph: %w", domain.ErrConfigMissing)
	}
	ratings, err := s.d.Facebook.PageRatings(ctx, s.d.FacebookPageID)
	if err != nil {
		observability.ObserveProviderError("facebook", errKind(err))
		return nil, err
	}
	return mapFacebookReviews(ratings, s.d.FacebookPageURL), nil
}

func (s *ReviewService) TrustpilotReviews(ctx context.Context) ([]domain.ReviewRecord, error) {
	if s.d.Trustpilot == nil || s.d.TrustpilotBusinessID == "" {
		observability.ObserveProviderError("trustpilot", "config_missing")
		return nil, fmt.Errorf("trustpilot: %w", domain.ErrConfigMissing)
	}
	reviews, err := s.d.Trustpilot.BusinessReviews(ctx, s.d.TrustpilotBusinessID)
	if err != nil {
		observability.ObserveProviderError("trustpilot", errKind(err))
		return nil, err
	}
	return mapTrustpilotReviews(reviews), nil
}

// BusinessProfile fetches the scraped aggregate profile (admin utility).
func (s *ReviewService) BusinessProfile(ctx context.Context) (domain.BusinessProfile, error) {
	if s.d.Profile == nil {
		observability.ObserveProviderError("gmaps", "config_missing")
		return domain.BusinessProfile{}, fmt.Errorf("business profile: %w", domain.ErrConfigMissing)
	}
	p, err := s.d.Profile.Fetch(ctx)
	if err != nil {
		observability.ObserveProviderError("gmaps", errKind(err))
		return domain.BusinessProfile{}, err
	}
	return p, nil
}

func errKind(err error) string {
	var ue *domain.UpstreamError
	var ne *domain.NetworkError
	switch {
	case errors.Is(err, domain.ErrConfigMissing):
		return "config_missing"
	case errors.As(err, &ue):
		return "upstream"
	case errors.As(err, &ne):
		return "network"
	}
	return "other"
}
