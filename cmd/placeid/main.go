// Command placeid finds the Google Place ID for a business: it runs a
// Places Text Search for the given query and prints the candidates.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rsm_air/internal/adapters/google"
	"rsm_air/internal/adapters/observability"
	"rsm_air/internal/app"
	"rsm_air/internal/shared"
)

func main() {
	query := flag.String("query", "RSM Air Conditioning Yarra Valley", "business name and location to search for")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.GoogleKey == "" {
		log.Fatal().Msg("GOOGLE_PLACES_API_KEY is not set")
	}
	client, err := google.New(cfg.GoogleBase, cfg.GoogleKey, cfg.ProviderTimeout, cfg.ProviderRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("google client init failed")
	}
	svc := app.NewReviewService(app.Deps{Google: client})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results, err := svc.SearchPlaces(ctx, *query)
	if err != nil {
		log.Fatal().Err(err).Str("query", *query).Msg("place search failed")
	}
	if len(results) == 0 {
		fmt.Println("no places matched")
		return
	}

	for i, p := range results {
		fmt.Printf("%d. %s\n", i+1, p.Name)
		fmt.Printf("   place_id: %s\n", p.PlaceID)
		fmt.Printf("   address:  %s\n", p.FormattedAddress)
		if p.Rating > 0 {
			fmt.Printf("   rating:   %.1f (%d ratings)\n", p.Rating, p.UserRatingsTotal)
		}
		if len(p.Types) > 0 {
			fmt.Printf("   types:    %s\n", strings.Join(p.Types, ", "))
		}
	}
}
