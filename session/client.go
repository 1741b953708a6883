package session

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/roomgate/roomgate/internal/accesstoken"
	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
)

// Client drives one session through
// Idle -> Requesting -> Connecting -> Connected, with Errored reachable from
// the two transitional states. The token fetch and the media connection are
// strictly sequential; the connection is never attempted before the token
// passed the expiry check.
type Client struct {
	fetcher   TokenFetcher
	connector MediaConnector
	clock     clockwork.Clock
	logger    *log.Logger

	mu       sync.Mutex
	state    State
	lastErr  error
	lastInfo JoinInfo
	handle   RoomHandle
	// gen invalidates in-flight joins: a result whose generation no longer
	// matches is discarded and its connection torn down, so a Leave (or a
	// new Join) during a pending join can never resurrect state
	gen    uint64
	notify func(State)
}

func New(fetcher TokenFetcher, connector MediaConnector, logger *log.Logger) *Client {
	return newWithClock(fetcher, connector, logger, clockwork.NewRealClock())
}

func newWithClock(fetcher TokenFetcher, connector MediaConnector, logger *log.Logger, clock clockwork.Clock) *Client {
	if logger == nil {
		panic("logger is required")
	}
	return &Client{
		fetcher:   fetcher,
		connector: connector,
		clock:     clock,
		logger:    logger,
		state:     StateIdle,
	}
}

// Notify registers a state observer, called synchronously on every
// transition. It must not call back into the client.
func (c *Client) Notify(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error that moved the client into Errored, if any.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// JoinWith acquires the identity from the provider, then joins. A provider
// failure (e.g. an aborted form) leaves the client Idle.
func (c *Client) JoinWith(ctx context.Context, provider IdentityProvider) error {
	info, err := provider.Identity(ctx)
	if err != nil {
		return errors.Wrap(ErrNoIdentity, err, "acquire join identity")
	}
	return c.Join(ctx, info)
}

// Join runs the full flow for info. Joining while connected tears the old
// connection down first (identity change), matching the cleanup invariant.
func (c *Client) Join(ctx context.Context, info JoinInfo) error {
	c.mu.Lock()
	c.teardownLocked()
	c.gen++
	myGen := c.gen
	c.lastInfo = info
	c.lastErr = nil
	c.setStateLocked(StateRequesting)
	c.mu.Unlock()

	joinsStarted.Add(ctx, 1)
	c.logger.Info("Requesting access token",
		log.String("room", info.Room),
		log.String("username", info.Username))

	token, err := c.fetcher.Fetch(ctx, info.Room, info.Username)
	if err != nil {
		joinsFailed.Add(ctx, 1)
		return c.fail(myGen, err)
	}

	c.mu.Lock()
	if c.gen != myGen {
		c.mu.Unlock()
		return ErrSuperseded
	}
	c.setStateLocked(StateConnecting)
	c.mu.Unlock()

	if err := c.checkExpiry(token.Token); err != nil {
		tokensExpired.Add(ctx, 1)
		joinsFailed.Add(ctx, 1)
		return c.fail(myGen, err)
	}

	handle, err := c.connector.Connect(ctx, token.ServerURL, token.Token)

	c.mu.Lock()
	if c.gen != myGen {
		c.mu.Unlock()
		// discard the stale result; never leak a live connection
		if handle != nil {
			handle.Disconnect()
		}
		return ErrSuperseded
	}
	if err != nil {
		c.lastErr = errors.Wrap(ErrConnectFailed, err, "connect to media service")
		c.setStateLocked(StateErrored)
		c.mu.Unlock()
		joinsFailed.Add(ctx, 1)
		return c.lastErr
	}
	c.handle = handle
	c.setStateLocked(StateConnected)
	c.mu.Unlock()

	joinsConnected.Add(ctx, 1)
	c.logger.Info("Connected to room", log.String("room", info.Room))
	return nil
}

// Retry re-runs the last join, the explicit retry affordance of the errored
// state. No automatic retry of the whole flow ever happens.
func (c *Client) Retry(ctx context.Context) error {
	c.mu.Lock()
	info := c.lastInfo
	c.mu.Unlock()
	return c.Join(ctx, info)
}

// Leave tears the connection down (exactly once) and returns to Idle.
// Safe to call in any state, any number of times.
func (c *Client) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
	c.gen++
	c.lastErr = nil
	c.setStateLocked(StateIdle)
}

// checkExpiry rejects a token whose expiry already elapsed instead of
// attempting a connection the server would refuse. A token that cannot be
// decoded at all is left for the media service to judge.
func (c *Client) checkExpiry(token string) error {
	claims, err := accesstoken.DecodeUnverified(token)
	if err != nil {
		c.logger.Warn("Could not decode access token for expiry check", log.Error(err))
		return nil
	}
	if claims.ExpiresAt.Time.Before(c.clock.Now()) {
		return errors.Newf(ErrTokenExpired, "token expired at %s", claims.ExpiresAt.Time)
	}
	return nil
}

func (c *Client) fail(myGen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != myGen {
		return ErrSuperseded
	}
	c.lastErr = err
	c.setStateLocked(StateErrored)
	return err
}

func (c *Client) teardownLocked() {
	if c.handle != nil {
		c.handle.Disconnect()
		c.handle = nil
	}
}

func (c *Client) setStateLocked(s State) {
	if c.state == s {
		return
	}
	c.state = s
	if c.notify != nil {
		c.notify(s)
	}
}
