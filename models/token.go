package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token. The token itself
// holds no account data: its "jti" claim points at the server-side [Session].
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionID returns the identifier of the server-side session the token refers to.
func (c SessionClaims) SessionID() string {
	return c.ID
}

// SessionToken is a freshly issued, signed session token.
type SessionToken struct {
	// SignedString is the compact JWS form sent to the client in the session cookie.
	SignedString string

	// SessionID is the identifier of the server-side session.
	SessionID string

	// ExpiresAt is the moment both the token and the session expire.
	ExpiresAt time.Time
}

// String returns the compact signed form of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}
