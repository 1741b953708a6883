package accesstoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/roomgate/roomgate/internal/errors"
)

// NewSigner creates a signer with HS256 (default). The apiKey becomes the
// token issuer claim, the apiSecret is the HMAC key.
func NewSigner(apiKey, apiSecret string) Signer {
	return NewSignerWithClock(apiKey, apiSecret, clockwork.NewRealClock())
}

// NewSignerWithClock injects the clock so tests can pin issuance time.
func NewSignerWithClock(apiKey, apiSecret string, clock clockwork.Clock) Signer {
	method := jwt.SigningMethodHS256
	return &signerImpl{
		apiKey:        apiKey,
		secret:        []byte(apiSecret),
		signingMethod: method,
		allowedMethods: map[string]bool{
			method.Alg(): true,
		},
		clock: clock,
	}
}

type signerImpl struct {
	apiKey         string
	secret         []byte
	signingMethod  jwt.SigningMethod
	allowedMethods map[string]bool
	clock          clockwork.Clock
}

// Sign mints a token for identity with the given grant, valid from now for ttl.
// The jti claim keeps back-to-back tokens for the same identity distinct.
func (s *signerImpl) Sign(identity string, grant *VideoGrant, ttl time.Duration) (string, error) {
	if identity == "" || grant == nil || grant.Room == "" {
		return "", errors.New(ErrInvalidRequest, "identity and room are required")
	}

	now := s.clock.Now()
	claims := &Claims{
		Video: grant,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.apiKey,
			Subject:   identity,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.signingMethod, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature with strict algorithm validation.
func (s *signerImpl) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		alg := token.Method.Alg()
		if !s.allowedMethods[alg] {
			return nil, errors.Newf(
				ErrInvalidToken,
				"unexpected signing method: %s (expected: %s)",
				alg, s.signingMethod.Alg(),
			)
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err, "verify access token")
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.Subject == "" || claims.Video == nil || claims.Video.Room == "" {
			return nil, errors.New(ErrInvalidToken, "missing required fields in token")
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// DecodeUnverified parses the payload without checking the signature. Clients
// use it to read the expiry claim before attempting a connection; it must not
// be used for authorization decisions.
func DecodeUnverified(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err, "decode access token")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New(ErrInvalidToken, "token has no expiry claim")
	}
	return claims, nil
}
