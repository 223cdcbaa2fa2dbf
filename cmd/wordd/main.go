package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/wordtrie/internal/api"
	"github.com/kumarlokesh/wordtrie/internal/config"
	"github.com/kumarlokesh/wordtrie/internal/dictionary"
	"github.com/kumarlokesh/wordtrie/internal/logging"
	"github.com/kumarlokesh/wordtrie/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	dict := dictionary.New()
	opts := cfg.Dictionary.WordlistOptions()
	for _, path := range cfg.Dictionary.Files {
		stats, err := dict.LoadFile(path, opts)
		if err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to load word list")
		}
		logger.Info().
			Str("path", path).
			Int("added", stats.Added).
			Int("skipped", stats.Skipped).
			Msg("Loaded word list")
	}
	logger.Info().Int("words", dict.Size()).Msg("Dictionary ready")

	serverOpts := []api.Option{api.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		serverOpts = append(serverOpts, api.WithMetrics(metrics.New(), cfg.Metrics.Path))
	}
	server := api.NewServer(cfg.Addr(), dict, serverOpts...)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal().Err(err).Msg("Server error")
		}
		return
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
		return
	}
	logger.Info().Msg("Server stopped")
}
