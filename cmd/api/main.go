package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"rsm_air/internal/adapters/facebook"
	"rsm_air/internal/adapters/google"
	server "rsm_air/internal/adapters/http_server"
	"rsm_air/internal/adapters/observability"
	"rsm_air/internal/adapters/profile"
	"rsm_air/internal/adapters/trustpilot"
	"rsm_air/internal/app"
	"rsm_air/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// provider clients; constructed only when their credential exists so
	// unconfigured providers stay on the ConfigMissing path
	deps := app.Deps{
		GooglePlaceID:        cfg.GooglePlaceID,
		FacebookPageID:       cfg.FacebookPageID,
		FacebookPageURL:      cfg.FacebookPageURL,
		TrustpilotBusinessID: cfg.TrustpilotBusinessID,
	}
	if cfg.GoogleKey != "" {
		g, err := google.New(cfg.GoogleBase, cfg.GoogleKey, cfg.ProviderTimeout, cfg.ProviderRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("google client init failed")
		}
		deps.Google = g
	}
	if cfg.FacebookToken != "" {
		f, err := facebook.New(cfg.FacebookBase, cfg.FacebookToken, cfg.ProviderTimeout, cfg.ProviderRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("facebook client init failed")
		}
		deps.Facebook = f
	}
	if cfg.TrustpilotKey != "" {
		tp, err := trustpilot.New(cfg.TrustpilotBase, cfg.TrustpilotKey, cfg.ProviderTimeout, cfg.ProviderRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("trustpilot client init failed")
		}
		deps.Trustpilot = tp
	}
	if cfg.BusinessProfileURL != "" {
		deps.Profile = profile.New(cfg.BusinessProfileURL, cfg.ProviderTimeout)
	}

	svc := app.NewReviewService(deps)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
