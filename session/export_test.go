package session

import (
	"github.com/jonboulle/clockwork"

	"github.com/roomgate/roomgate/internal/log"
)

// NewForTest builds a client on an injectable clock so expiry checks can be
// exercised deterministically.
func NewForTest(fetcher TokenFetcher, connector MediaConnector, logger *log.Logger, clock clockwork.Clock) *Client {
	return newWithClock(fetcher, connector, logger, clock)
}
