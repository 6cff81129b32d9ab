package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sandwich "github.com/WelcomerTeam/Sandwich-Interactions"
	"github.com/WelcomerTeam/Sandwich-Interactions/messaging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	configurationLocation := flag.String("configuration", "sandwich-interactions.yaml", "Path of the configuration file")
	flag.Parse()

	configuration, err := sandwich.LoadConfiguration(*configurationLocation)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	logger, err := sandwich.NewLogger(configuration.Logging)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if configuration.Prometheus.Address != "" {
		go setupPrometheus(logger, configuration.Prometheus.Address)
	}

	mq, err := messaging.NewMQClient(configuration.Consumer.Type)
	if err != nil {
		logger.Panic().Err(err).Msg("Failed to create mq client")
	}

	err = mq.Connect(ctx, configuration.Consumer.ClientName, configuration.Consumer.Arguments)
	if err != nil {
		logger.Panic().Err(err).Str("mq", mq.String()).Msg("Failed to connect mq client")
	}

	defer mq.Close()

	client := sandwich.NewClient(sandwich.ClientOptions{
		Logger:         &logger,
		EventBlacklist: configuration.Dispatch.EventBlacklist,
	})

	client.InteractionCreate.Subscribe(func(_ context.Context, interaction sandwich.Interaction) {
		base := interaction.AsInteraction()

		event := logger.Info().
			Str("id", base.ID.String()).
			Uint16("type", uint16(base.Type)).
			Str("structure", fmt.Sprintf("%T", interaction))

		if base.User != nil {
			event = event.Str("user", base.User.AsUser().Username)
		}

		event.Msg("Received interaction")
	})

	client.Debug.Subscribe(func(_ context.Context, debugEvent *sandwich.DebugEvent) {
		logger.Debug().Err(debugEvent.Err).Str("event_type", debugEvent.EventType).Msg(debugEvent.Message)
	})

	err = client.Run(ctx, mq, configuration.Consumer.Channel)
	if err != nil {
		logger.Error().Err(err).Msg("Consumer stopped")
	}

	logger.Info().Int64("processed", client.Processed()).Msg("Shutting down")
}

func setupPrometheus(logger zerolog.Logger, address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Str("address", address).Msg("Serving prometheus")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("Failed to serve prometheus")
	}
}
