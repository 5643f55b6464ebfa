package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/health-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for a server-side
// session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the identifier of the server-side session
//   - Subject   (sub): the identifier of the account the session belongs to
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//
// issuer, sessionID, ttl and signKey are required. Returns an error if any of
// them are empty or not positive.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("health-portal", sessionID, "42", time.Now(), time.Hour, "secret")
func GenerateSessionToken(issuer, sessionID, subject string, now time.Time, ttl time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionID == "" || ttl <= 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	expiresAt := now.Add(ttl)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        sessionID,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{
		SignedString: tokenString,
		SessionID:    sessionID,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseSessionToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature verification using signKey (other algorithms are rejected)
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim check, unless allowExpired is set
//   - presence of the session ID (jti) claim
//
// allowExpired exists for logout, which must be able to revoke a session whose
// token has already expired.
func ParseSessionToken(tokenString, signKey, issuer string, allowExpired bool) (models.SessionClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if allowExpired {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, options...)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	// WithoutClaimsValidation also skips the issuer check
	if allowExpired && claims.Issuer != issuer {
		return models.SessionClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenInvalidIssuer)
	}
	if claims.SessionID() == "" {
		return models.SessionClaims{}, errors.New("empty session id error")
	}

	return claims, nil
}
