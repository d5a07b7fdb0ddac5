package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"styledecor/internal/apiclient"
	"styledecor/internal/infra"
	"styledecor/internal/infra/geoip"
	"styledecor/internal/middleware"
	"styledecor/internal/session"
	"styledecor/internal/web"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// GeoIP is optional; without a database the coverage map falls back to
	// header-based region detection.
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	sessions := session.NewManager(api, cfg.SessionCookie, cfg.SecureCookies, logger)

	app, err := web.NewApp(cfg, logger, api, sessions)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build app")
	}

	router, err := app.Router(lookup)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid route table")
	}

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("web listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
