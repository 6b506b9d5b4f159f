package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryWindow is how close to expiry a token must be before ExpiresSoon
// reports it.
const expiryWindow = 2 * time.Minute

// TokenExpiry inspects the held bearer token's exp claim without verifying
// the signature; the server stays authoritative on validity. Opaque
// (non-JWT) tokens report ok=false and are never proactively expired.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token, held := s.Token()
	if !held {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresSoon reports whether the token is expired or within the refresh
// window. Callers holding a refresh token should refresh before the next
// authenticated call.
func (s *Store) ExpiresSoon() bool {
	exp, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return time.Until(exp) < expiryWindow
}
