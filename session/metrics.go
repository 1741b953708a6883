package session

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/roomgate/roomgate/internal/otel"
)

var (
	joinsStarted   metric.Int64Counter
	joinsConnected metric.Int64Counter
	joinsFailed    metric.Int64Counter
	tokensExpired  metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("session.client", intotel.PrefixSessionClient)

	f.Int64Counter(&joinsStarted, "joins.started",
		metric.WithDescription("Join attempts started"))

	f.Int64Counter(&joinsConnected, "joins.connected",
		metric.WithDescription("Join attempts that reached the connected state"))

	f.Int64Counter(&joinsFailed, "joins.failed",
		metric.WithDescription("Join attempts that ended in the errored state"))

	f.Int64Counter(&tokensExpired, "tokens.expired",
		metric.WithDescription("Tokens rejected client-side because the expiry already elapsed"))
}
