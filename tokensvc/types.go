package tokensvc

import (
	"context"
	"time"

	"github.com/spf13/viper"
)

// TokenTTL is the fixed validity window of every issued token (10 hours).
const TokenTTL = 36000 * time.Second

// Config holds the media-service credentials read per request. All three
// values are required; absence is a hard configuration error, never a
// default-substituted one.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	ServerURL string `mapstructure:"server_url"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	// empty defaults keep env binding alive without substituting values
	v.SetDefault(p("api_key"), "")
	v.SetDefault(p("api_secret"), "")
	v.SetDefault(p("server_url"), "")
}

// Check reports which of the three values are present.
func (c Config) Check() ConfigCheck {
	return ConfigCheck{
		HasAPIKey:    c.APIKey != "",
		HasAPISecret: c.APISecret != "",
		HasServerURL: c.ServerURL != "",
	}
}

// ConfigCheck is safe to expose: presence booleans only, never values.
type ConfigCheck struct {
	HasAPIKey    bool `json:"hasApiKey"`
	HasAPISecret bool `json:"hasApiSecret"`
	HasServerURL bool `json:"hasServerUrl"`
}

func (c ConfigCheck) Complete() bool {
	return c.HasAPIKey && c.HasAPISecret && c.HasServerURL
}

// TokenResponse is the success body of the token endpoint.
type TokenResponse struct {
	Token     string `json:"token"`
	Room      string `json:"room"`
	Username  string `json:"username"`
	ServerURL string `json:"serverUrl"`
}

// TokenIssuer validates a (room, username) pair against the service
// configuration and mints a signed access token for it.
type TokenIssuer interface {
	Issue(ctx context.Context, room, username string) (*TokenResponse, error)
}
