package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	GoogleBase    string
	GoogleKey     string
	GooglePlaceID string

	FacebookBase    string
	FacebookToken   string
	FacebookPageID  string
	FacebookPageURL string

	TrustpilotBase       string
	TrustpilotKey        string
	TrustpilotBusinessID string

	BusinessProfileURL string

	ProviderTimeout time.Duration
	ProviderRPS     int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		GoogleBase:    env("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		GoogleKey:     env("GOOGLE_PLACES_API_KEY", ""),
		GooglePlaceID: env("GOOGLE_PLACE_ID", ""),

		FacebookBase:    env("FACEBOOK_GRAPH_BASE_URL", "https://graph.facebook.com/v18.0"),
		FacebookToken:   env("FACEBOOK_ACCESS_TOKEN", ""),
		FacebookPageID:  env("FACEBOOK_PAGE_ID", ""),
		FacebookPageURL: env("FACEBOOK_PAGE_URL", "https://www.facebook.com/profile.php?id=100090352021248"),

		TrustpilotBase:       env("TRUSTPILOT_BASE_URL", "https://api.trustpilot.com/v1"),
		TrustpilotKey:        env("TRUSTPILOT_API_KEY", ""),
		TrustpilotBusinessID: env("TRUSTPILOT_BUSINESS_ID", ""),

		BusinessProfileURL: env("GOOGLE_BUSINESS_URL", "https://maps.app.goo.gl/jYcgij5FyLvLSeFA6"),

		ProviderTimeout: time.Duration(atoi("PROVIDER_TIMEOUT_SECONDS", 10)) * time.Second,
		ProviderRPS:     atoi("PROVIDER_RPS", 5),
	}
	if c.GoogleKey == "" {
		log.Warn().Msg("GOOGLE_PLACES_API_KEY is empty; google routes will report not configured")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
