package main

import (
	"context"
	"net/http"

	"github.com/spf13/viper"

	"github.com/roomgate/roomgate/internal/accesstoken"
	"github.com/roomgate/roomgate/internal/config"
	"github.com/roomgate/roomgate/internal/httputil"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/internal/otel"
	"github.com/roomgate/roomgate/internal/secrets"
	"github.com/roomgate/roomgate/internal/workflow"
	"github.com/roomgate/roomgate/tokensvc"
	"github.com/roomgate/roomgate/tokensvc/issuer"
	"github.com/roomgate/roomgate/tokensvc/transport"
)

type Config struct {
	App     config.App      `mapstructure:"app"`
	Http    httputil.Config `mapstructure:"http"`
	Otel    otel.Config     `mapstructure:"otel"`
	LiveKit tokensvc.Config `mapstructure:"livekit"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("allowed_origins", []string{"*"})

		config.Setup(v, "app")
		otel.Setup(v, "otel")
		httputil.Setup(v, "http")
		tokensvc.Setup(v, "livekit")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:8083")
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

	// Initialize OpenTelemetry
	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting Token Service...")

	// Config values may reference Secret Manager versions instead of
	// carrying the secret inline.
	resolver := secrets.NewResolver(logger.Module("Secrets"))
	for _, field := range []*string{
		&config.LiveKit.APIKey,
		&config.LiveKit.APISecret,
		&config.LiveKit.ServerURL,
	} {
		resolved, err := resolver.Resolve(ctx, *field)
		if err != nil {
			logger.Fatal("Failed to resolve secret reference", log.Error(err))
		}
		*field = resolved
	}

	// Missing secrets are reported per request (fail closed with a 500),
	// not at startup, so log presence only.
	check := config.LiveKit.Check()
	logger.Info("Media service configuration",
		log.Bool("hasApiKey", check.HasAPIKey),
		log.Bool("hasApiSecret", check.HasAPISecret),
		log.Bool("hasServerUrl", check.HasServerURL))

	signer := accesstoken.NewSigner(config.LiveKit.APIKey, config.LiveKit.APISecret)
	tokenIssuer := issuer.New(config.LiveKit, signer, logger.Module("Issuer"))

	router := transport.NewRouter(tokenIssuer, config.AllowedOrigins, logger.Module("Router"))
	server := httputil.NewServer(&config.Http, router.Handler())

	// Start HTTP server in goroutine
	go func() {
		logger.Info("Starting token API server", log.String("addr", config.Http.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start token API server", log.Error(err))
		}
	}()

	// Graceful shutdown
	cleanup := func(ctx context.Context) {
		_ = server.Shutdown(ctx)

		if err := resolver.Close(); err != nil {
			logger.Error("Error closing secret resolver", log.Error(err))
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
