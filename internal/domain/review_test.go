package domain_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"rsm_air/internal/domain"
)

func TestPlaceSummary_JSONRoundTrip(t *testing.T) {
	in := domain.PlaceSummary{
		Name:                 "RSM Air Conditioning",
		AverageRating:        4.9,
		TotalRatingCount:     47,
		PlaceID:              "place-1",
		CanonicalURL:         "https://maps.google.com/?cid=1",
		FormattedAddress:     "Yarra Valley VIC",
		FormattedPhoneNumber: "+61 400 000 000",
		Reviews: []domain.ReviewRecord{
			{ID: "1700000000", AuthorName: "Ana", Rating: 5, Text: "great", TimeDescription: "a week ago", Platform: domain.PlatformGoogle, SourceURL: "https://maps.google.com/contrib/ana"},
			{ID: "1690000000", AuthorName: "Ben", Rating: 4, TimeDescription: "a month ago", Platform: domain.PlatformGoogle},
		},
	}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out domain.PlaceSummary
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip changed the value:\n in: %+v\nout: %+v", in, out)
	}
}

func TestUpstreamError_Message(t *testing.T) {
	err := &domain.UpstreamError{Provider: "google", Status: "OVER_QUERY_LIMIT", Message: "quota exceeded"}
	want := "google upstream error: OVER_QUERY_LIMIT: quota exceeded"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}
}
