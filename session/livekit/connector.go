package livekit

import (
	"context"
	"sync"

	lksdk "github.com/livekit/server-sdk-go/v2"

	"github.com/roomgate/roomgate/internal/errors"
	"github.com/roomgate/roomgate/internal/log"
	"github.com/roomgate/roomgate/session"
)

const ErrConnect errors.Code = "livekit connect"

// NewConnector returns a MediaConnector backed by the LiveKit client SDK.
// Everything past the dial (tracks, negotiation, adaptive streaming) is the
// SDK's business.
func NewConnector(logger *log.Logger) session.MediaConnector {
	if logger == nil {
		panic("logger is required")
	}
	return &connectorImpl{logger: logger}
}

type connectorImpl struct {
	logger *log.Logger
}

func (c *connectorImpl) Connect(_ context.Context, serverURL, token string) (session.RoomHandle, error) {
	logger := c.logger

	callback := lksdk.NewRoomCallback()
	callback.OnDisconnected = func() {
		logger.Info("Disconnected from room")
	}

	// The SDK manages its own dial deadline.
	room, err := lksdk.ConnectToRoomWithToken(serverURL, token, callback)
	if err != nil {
		return nil, errors.Wrapf(ErrConnect, err, "connect to %s", serverURL)
	}

	c.logger.Info("Joined room",
		log.String("serverUrl", serverURL),
		log.String("room", room.Name()))

	return &roomHandle{room: room}, nil
}

type roomHandle struct {
	room *lksdk.Room
	once sync.Once
}

// Disconnect is idempotent; the session client may call it on teardown paths
// that can race.
func (h *roomHandle) Disconnect() {
	h.once.Do(func() {
		h.room.Disconnect()
	})
}
