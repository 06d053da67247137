// internal/auth/session.go
package auth

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// privateKey and publicKey sign and verify session JWTs.
var (
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey

	// tokenExpireSec is the session lifetime in seconds (0 => never).
	tokenExpireSec int
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "auth_token"

// Init generates a fresh ed25519 key pair at runtime and sets the
// session lifetime. expire is a Go duration string or "never"/"0"/"".
// Sessions signed before a restart do not survive it; guests simply get
// re-minted.
func Init(expire string) error {
	var err error
	publicKey, privateKey, err = ed25519.GenerateKey(nil)
	if err != nil {
		return fmt.Errorf("failed to generate ed25519 key pair: %w", err)
	}

	switch expire {
	case "", "0", "never":
		tokenExpireSec = 0
	default:
		d, err := time.ParseDuration(expire)
		if err != nil {
			return fmt.Errorf("failed to parse token expire time: %w", err)
		}
		tokenExpireSec = int(d.Seconds())
	}
	return nil
}

// TokenExpireSeconds returns the configured session lifetime, for
// cookie Max-Age.
func TokenExpireSeconds() int { return tokenExpireSec }

// CreateJWT creates a signed session token with "sub" = userID.
func CreateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
	}
	if tokenExpireSec > 0 {
		claims["exp"] = time.Now().Add(time.Duration(tokenExpireSec) * time.Second).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(privateKey)
}

// AuthenticateJWT verifies a session token and returns its "sub" claim.
func AuthenticateJWT(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt parse error: %w", err)
	}
	if !t.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid jwt claims")
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("missing sub in jwt")
	}
	return userID, nil
}
