package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextrip-test-server/pkg/http_server"
	"github.com/travigo/nextrip-test-server/pkg/tlsconfig"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Listen        string
	MetricsListen string
	TLS           tlsconfig.Config
}

// SetupServer serves the API over TLS until ctx is cancelled or a listener fails
func SetupServer(ctx context.Context, config ServerConfig) error {
	webApp, err := NewApp()
	if err != nil {
		return err
	}

	tlsConfig, err := tlsconfig.Build(config.TLS)
	if err != nil {
		return err
	}

	listener, err := tls.Listen("tcp", config.Listen, tlsConfig)
	if err != nil {
		return fmt.Errorf("bind %s: %w", config.Listen, err)
	}

	log.Info().Msgf("Listening on %s", listener.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return webApp.Listener(listener)
	})

	var metricsApp *fiber.App
	if config.MetricsListen != "" {
		metricsApp = http_server.NewMetricsApp()
		log.Info().Msgf("Serving metrics on %s", config.MetricsListen)
		g.Go(func() error {
			return metricsApp.Listen(config.MetricsListen)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if metricsApp != nil {
			if err := metricsApp.ShutdownWithContext(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shut down metrics server")
			}
		}

		return webApp.ShutdownWithContext(shutdownCtx)
	})

	return g.Wait()
}
