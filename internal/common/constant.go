// Package common contains constants and sentinel errors shared by the
// Articles Hub client packages.
package common

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Session storage keys. A session is exactly these two records.
const (
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)

// LoginPath is where every authorization failure sends the user.
const LoginPath = "/login"
