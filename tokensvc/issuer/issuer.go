package issuer

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/roomgate/roomgate/internal/accesstoken"
	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
	intotel "github.com/roomgate/roomgate/internal/otel"
	"github.com/roomgate/roomgate/internal/utils"
	"github.com/roomgate/roomgate/tokensvc"
)

type tokenIssuerImpl struct {
	cfg    tokensvc.Config
	signer accesstoken.Signer
	logger *log.Logger
	tracer trace.Tracer
}

// New creates a TokenIssuer. The configuration is passed in explicitly (not
// read from ambient process state) so tests can exercise every failure mode
// without touching the environment.
func New(cfg tokensvc.Config, signer accesstoken.Signer, logger *log.Logger) tokensvc.TokenIssuer {
	if logger == nil {
		panic("logger is required")
	}
	return &tokenIssuerImpl{
		cfg:    cfg,
		signer: signer,
		logger: logger,
		tracer: otel.Tracer("tokensvc.issuer"),
	}
}

// Issue validates inputs and configuration, then mints a token granting full
// join/publish/subscribe rights in the room. Every caller gets the same grant;
// there is no role or capacity distinction. Failures are terminal for the
// request; the issuer never retries.
func (i *tokenIssuerImpl) Issue(ctx context.Context, room, username string) (*tokensvc.TokenResponse, error) {
	room = strings.TrimSpace(room)
	username = strings.TrimSpace(username)

	// room is low-cardinality enough for a span attribute; the username is not
	// recorded
	ctx, span := intotel.StartSpan(ctx, i.tracer, "issuer.Issue",
		attribute.String("room", room))
	defer span.End()

	if room == "" || username == "" {
		requestsInvalid.Add(ctx, 1)
		err := errors.New(ErrInvalidRequest, "room and username are required")
		intotel.RecordError(span, err)
		return nil, err
	}

	check := i.cfg.Check()
	if !check.Complete() {
		configErrors.Add(ctx, 1)
		i.logger.Error("Incomplete media service configuration",
			log.Bool("hasApiKey", check.HasAPIKey),
			log.Bool("hasApiSecret", check.HasAPISecret),
			log.Bool("hasServerUrl", check.HasServerURL))
		err := &ConfigError{Check: check}
		intotel.RecordError(span, err)
		return nil, err
	}

	grant := &accesstoken.VideoGrant{
		Room:         room,
		RoomJoin:     true,
		CanPublish:   utils.Ptr(true),
		CanSubscribe: utils.Ptr(true),
	}

	token, err := i.signer.Sign(username, grant, tokensvc.TokenTTL)
	if err != nil {
		tokensFailed.Add(ctx, 1)
		wrapped := errors.Wrap(ErrSigning, err, "sign access token")
		intotel.RecordError(span, wrapped)
		return nil, wrapped
	}

	tokensIssued.Add(ctx, 1)
	i.logger.Info("Access token issued",
		log.String("room", room),
		log.String("username", username),
		log.Duration("ttl", tokensvc.TokenTTL))
	// presence/length only, never the secret itself
	i.logger.Debug("Media service configuration",
		log.Int("apiKeyLength", len(i.cfg.APIKey)),
		log.Int("apiSecretLength", len(i.cfg.APISecret)),
		log.String("serverUrl", i.cfg.ServerURL))

	return &tokensvc.TokenResponse{
		Token:     token,
		Room:      room,
		Username:  username,
		ServerURL: i.cfg.ServerURL,
	}, nil
}
