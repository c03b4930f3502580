package app

import "rsm_air/internal/domain"

// Curated testimonials: manually selected, explicitly labeled with the
// "manual" platform, and served only from their own endpoint. They are the
// sanctioned fallback for a page that cannot show live provider data, and
// are never substituted silently for a failed live fetch.
var curatedReviews = []domain.ReviewRecord{
	{
		ID:              "curated-1",
		AuthorName:      "Sarah Johnson",
		Rating:          5,
		Text:            "Outstanding service from River and his team! They installed our new Fujitsu system efficiently and professionally. The quote was competitive and the work was completed on time.",
		TimeDescription: "December 2024",
		Platform:        domain.PlatformManual,
	},
	{
		ID:              "curated-2",
		AuthorName:      "Michael Chen",
		Rating:          5,
		Text:            "River was fantastic to deal with from start to finish. He provided expert advice on the best system for our home and the installation was seamless. Great communication throughout the process.",
		TimeDescription: "November 2024",
		Platform:        domain.PlatformManual,
	},
	{
		ID:              "curated-3",
		AuthorName:      "Charli Tyler",
		Rating:          5,
		Text:            "Professional installation of our split system. The team was punctual, tidy, and the unit works perfectly. Would happily recommend to anyone in the Yarra Valley.",
		TimeDescription: "November 2024",
		Platform:        domain.PlatformManual,
	},
	{
		ID:              "curated-4",
		AuthorName:      "Emma Wilson",
		Rating:          5,
		Text:            "Great experience with RSM Air Conditioning. Fair pricing, quality workmanship, and they left the site spotless.",
		TimeDescription: "October 2024",
		Platform:        domain.PlatformManual,
	},
	{
		ID:              "curated-5",
		AuthorName:      "David Thompson",
		Rating:          5,
		Text:            "Had two reverse cycle units installed. The advice on positioning made a real difference and the finish is very clean.",
		TimeDescription: "October 2024",
		Platform:        domain.PlatformManual,
	},
}

// CuratedReviews returns a copy of the curated testimonial set so callers
// cannot mutate the catalog.
func (s *ReviewService) CuratedReviews() []domain.ReviewRecord {
	out := make([]domain.ReviewRecord, len(curatedReviews))
	copy(out, curatedReviews)
	return out
}
