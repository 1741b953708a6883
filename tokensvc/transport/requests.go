package transport

// TokenQuery carries the raw query parameters of the token endpoint.
// Presence (after trimming) is the only validation rule and it lives in the
// issuer, so no binding constraints are declared here.
type TokenQuery struct {
	Room     string `form:"room"`
	Username string `form:"username"`
}
