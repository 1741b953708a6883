package issuer

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/roomgate/roomgate/internal/otel"
)

var (
	tokensIssued    metric.Int64Counter
	tokensFailed    metric.Int64Counter
	requestsInvalid metric.Int64Counter
	configErrors    metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("tokensvc.issuer", intotel.PrefixTokenService)

	f.Int64Counter(&tokensIssued, "tokens.issued",
		metric.WithDescription("Access tokens successfully issued"))

	f.Int64Counter(&tokensFailed, "tokens.failed",
		metric.WithDescription("Access token signing failures"))

	f.Int64Counter(&requestsInvalid, "requests.invalid",
		metric.WithDescription("Requests rejected for missing room or username"))

	f.Int64Counter(&configErrors, "config.errors",
		metric.WithDescription("Requests failed due to incomplete service configuration"))
}
