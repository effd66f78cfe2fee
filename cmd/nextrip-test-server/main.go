package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextrip-test-server/pkg/api"
	"github.com/travigo/nextrip-test-server/pkg/nextrip"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("NEXTRIP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stdout)
	}

	level := zerolog.TraceLevel
	if levelName := os.Getenv("NEXTRIP_LOG_LEVEL"); levelName != "" {
		parsedLevel, err := zerolog.ParseLevel(levelName)
		if err != nil {
			log.Fatal().Err(err).Str("level", levelName).Msg("Invalid log level")
		}
		level = parsedLevel
	}
	log.Logger = log.Logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:        "nextrip-test-server",
		Description: "HTTPS stand-in for the NexTrip departures API serving fixed departures",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			nextrip.RegisterCLI(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
