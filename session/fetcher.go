package session

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/internal/retry"
)

const (
	// The original browser client issued an unbounded fetch; a stuck
	// request blocked the requesting state forever. The timeout and the
	// bounded retry below are a deliberate departure.
	fetchTimeout      = 10 * time.Second
	retryInitialDelay = 200 * time.Millisecond
	retryMaxDelay     = 2 * time.Second
	retryMaxElapsed   = 8 * time.Second
)

type tokenResponseBody struct {
	Token     string `json:"token"`
	Room      string `json:"room"`
	Username  string `json:"username"`
	ServerURL string `json:"serverUrl"`
}

type errorResponseBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type tokenFetcherImpl struct {
	client *resty.Client
	retry  retry.Retry
	logger *log.Logger
}

// NewTokenFetcher creates a TokenFetcher against the token service at baseURL.
func NewTokenFetcher(baseURL string, logger *log.Logger) TokenFetcher {
	if logger == nil {
		panic("logger is required")
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(fetchTimeout)

	return &tokenFetcherImpl{
		client: client,
		retry:  retry.New(logger, retryInitialDelay, retryMaxDelay, retryMaxElapsed),
		logger: logger,
	}
}

// Fetch requests a token. Transport errors are retried with backoff; any HTTP
// response, success or error, is terminal (the issuer never retries and a
// 4xx/5xx will not improve on its own).
func (f *tokenFetcherImpl) Fetch(ctx context.Context, room, username string) (*JoinToken, error) {
	var body tokenResponseBody

	err := f.retry.Do(ctx, func() error {
		var apiErr errorResponseBody
		resp, err := f.client.R().
			SetContext(ctx).
			SetQueryParam("room", room).
			SetQueryParam("username", username).
			SetResult(&body).
			SetError(&apiErr).
			Get("/api/token")
		if err != nil {
			return errors.Wrap(ErrFetchFailed, err, "request token")
		}
		if resp.IsError() {
			msg := apiErr.Error
			if msg == "" {
				msg = resp.Status()
			}
			return backoff.Permanent(errors.Newf(ErrFetchFailed, "token endpoint returned %d: %s", resp.StatusCode(), msg))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if body.Token == "" {
		return nil, errors.New(ErrMalformedResponse, "no token received from server")
	}
	if body.ServerURL == "" {
		return nil, errors.New(ErrMalformedResponse, "no server URL received from server")
	}

	return &JoinToken{
		Token:     body.Token,
		Room:      body.Room,
		Username:  body.Username,
		ServerURL: body.ServerURL,
	}, nil
}
