package session

import "context"

// State is the connection lifecycle of one client session.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
	StateErrored    State = "errored"
)

// JoinInfo identifies one participant in one room.
type JoinInfo struct {
	Room     string
	Username string
}

// JoinToken is the token endpoint's response as consumed by the client.
type JoinToken struct {
	Token     string
	Room      string
	Username  string
	ServerURL string
}

// TokenFetcher exchanges a (room, username) pair for an access token.
type TokenFetcher interface {
	Fetch(ctx context.Context, room, username string) (*JoinToken, error)
}

// RoomHandle is a live connection to the media service. Disconnect must be
// safe to call more than once.
type RoomHandle interface {
	Disconnect()
}

// MediaConnector opens a connection to the external media service. The
// connection itself (tracks, signaling, adaptive streaming) belongs entirely
// to the service's client library.
type MediaConnector interface {
	Connect(ctx context.Context, serverURL, token string) (RoomHandle, error)
}

// IdentityProvider supplies the join identity: hard-coded for immediate-join
// flows, interactive for form-then-join flows.
type IdentityProvider interface {
	Identity(ctx context.Context) (JoinInfo, error)
}
