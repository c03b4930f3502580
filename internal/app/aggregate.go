package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rsm_air/internal/domain"
)

// PlatformFeed is one provider's section of the multi-platform feed. A
// failed provider carries its error message; it never hides the other
// sections.
type PlatformFeed struct {
	Platform domain.Platform       `json:"platform"`
	Reviews  []domain.ReviewRecord `json:"reviews,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// AllReviews fetches every configured provider concurrently. Providers that
// are not configured are skipped entirely; configured providers succeed or
// fail independently, so the combined feed degrades section by section
// instead of all-or-nothing.
func (s *ReviewService) AllReviews(ctx context.Context) []PlatformFeed {
	type fetch struct {
		platform domain.Platform
		run      func(context.Context) ([]domain.ReviewRecord, error)
	}

	var fetches []fetch
	if s.d.Google != nil && s.d.GooglePlaceID != "" {
		fetches = append(fetches, fetch{domain.PlatformGoogle, func(ctx context.Context) ([]domain.ReviewRecord, error) {
			sum, err := s.GoogleReviews(ctx)
			if err != nil {
				return nil, err
			}
			return sum.Reviews, nil
		}})
	}
	if s.d.Facebook != nil && s.d.FacebookPageID != "" {
		fetches = append(fetches, fetch{domain.PlatformFacebook, s.FacebookReviews})
	}
	if s.d.Trustpilot != nil && s.d.TrustpilotBusinessID != "" {
		fetches = append(fetches, fetch{domain.PlatformTrustpilot, s.TrustpilotReviews})
	}

	feeds := make([]PlatformFeed, len(fetches))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fetches {
		i, f := i, f
		g.Go(func() error {
			feeds[i].Platform = f.platform
			revs, err := f.run(gctx)
			if err != nil {
				// independence: record the failure, never cancel siblings
				feeds[i].Error = err.Error()
				return nil
			}
			feeds[i].Reviews = revs
			return nil
		})
	}
	_ = g.Wait()
	return feeds
}
