package session

import "github.com/roomgate/roomgate/internal/errors"

const (
	ErrFetchFailed       errors.Code = "token fetch failed"
	ErrMalformedResponse errors.Code = "malformed token response"
	ErrTokenExpired      errors.Code = "token expired"
	ErrConnectFailed     errors.Code = "media connect failed"
	ErrSuperseded        errors.Code = "join superseded"
	ErrNoIdentity        errors.Code = "missing identity"
)
