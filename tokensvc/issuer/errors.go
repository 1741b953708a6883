package issuer

import (
	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/tokensvc"
)

const (
	ErrInvalidRequest errors.Code = "invalid request"
	ErrConfiguration  errors.Code = "configuration error"
	ErrSigning        errors.Code = "signing failure"
)

// ConfigError reports an incomplete service configuration. It carries the
// per-secret presence flags so operators can see which value is missing
// without the value itself ever leaving the process.
type ConfigError struct {
	Check tokensvc.ConfigCheck
}

func (e *ConfigError) Error() string {
	return string(ErrConfiguration)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
