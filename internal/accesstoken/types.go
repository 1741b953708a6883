package accesstoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VideoGrant is the room permission set embedded in an access token, wire
// compatible with the media service's `video` claim.
type VideoGrant struct {
	Room         string `json:"room"`
	RoomJoin     bool   `json:"roomJoin,omitempty"`
	CanPublish   *bool  `json:"canPublish,omitempty"`
	CanSubscribe *bool  `json:"canSubscribe,omitempty"`
}

// Claims is the full token payload: registered claims plus the video grant.
// Issuer carries the API key, Subject the participant identity.
type Claims struct {
	Video *VideoGrant `json:"video,omitempty"`
	jwt.RegisteredClaims
}

// Signer mints and verifies signed access tokens
type Signer interface {
	Sign(identity string, grant *VideoGrant, ttl time.Duration) (string, error)
	Verify(tokenString string) (*Claims, error)
}
