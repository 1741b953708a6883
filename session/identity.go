package session

import (
	"context"
	"strings"

	"github.com/roomgate/roomgate/internal/errors"
)

// Static returns a provider with a hard-coded identity (immediate-join flow).
func Static(room, username string) IdentityProvider {
	return staticIdentity{room: room, username: username}
}

type staticIdentity struct {
	room     string
	username string
}

func (s staticIdentity) Identity(context.Context) (JoinInfo, error) {
	room := strings.TrimSpace(s.room)
	username := strings.TrimSpace(s.username)
	if room == "" || username == "" {
		return JoinInfo{}, errors.New(ErrNoIdentity, "please enter both room name and your name")
	}
	return JoinInfo{Room: room, Username: username}, nil
}

// IdentityFunc adapts a function into an IdentityProvider (form-then-join
// flows supply their own acquisition logic).
type IdentityFunc func(ctx context.Context) (JoinInfo, error)

func (f IdentityFunc) Identity(ctx context.Context) (JoinInfo, error) {
	return f(ctx)
}
