package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/roomgate/roomgate/internal/config"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/internal/otel"
	"github.com/roomgate/roomgate/internal/workflow"
	"github.com/roomgate/roomgate/session"
	"github.com/roomgate/roomgate/session/livekit"
)

type Config struct {
	App  config.App  `mapstructure:"app"`
	Otel otel.Config `mapstructure:"otel"`

	TokenServiceURL string `mapstructure:"token_service_url"`
	Room            string `mapstructure:"room"`
	Username        string `mapstructure:"username"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("token_service_url", "http://localhost:8083")
		v.SetDefault("room", "")
		v.SetDefault("username", "")

		config.Setup(v, "app")
		otel.Setup(v, "otel")
		v.SetDefault("otel.service_name", "session-client")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Joining room...",
		log.String("tokenService", config.TokenServiceURL),
		log.String("room", config.Room),
		log.String("username", config.Username))

	fetcher := session.NewTokenFetcher(config.TokenServiceURL, logger.Module("Fetcher"))
	connector := livekit.NewConnector(logger.Module("Connector"))
	client := session.New(fetcher, connector, logger.Module("Session"))
	client.Notify(func(s session.State) {
		logger.Info("Session state changed", log.String("state", string(s)))
	})

	if err := client.JoinWith(ctx, session.Static(config.Room, config.Username)); err != nil {
		logger.Fatal("Failed to join room", log.Error(err))
	}

	// Stay connected until interrupted; leaving tears the connection down
	// exactly once.
	cleanup := func(ctx context.Context) {
		client.Leave()
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
