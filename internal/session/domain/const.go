// Package domain defines the operator session model: the key/value credential store
// views read from, the bearer credential resolved from it, and the server-side session
// the gateway keeps for each logged-in operator.
package domain

// Well-known session store keys.
const (
	// KeyAccessToken holds the primary bearer token.
	KeyAccessToken = "access_token"

	// KeyToken is the alternate token key, consulted when KeyAccessToken is absent or empty.
	KeyToken = "token"

	// KeyTokenType holds the authorization scheme, "Bearer" when unset.
	KeyTokenType = "token_type"

	// KeyUsername holds the login name of the operator.
	KeyUsername = "username"

	// KeyRole holds the role reported by the remote API for the operator.
	KeyRole = "role"
)

// DefaultTokenType is the scheme used when the store has no token_type.
const DefaultTokenType = "Bearer"
