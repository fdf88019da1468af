package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiry reads the exp claim of an API token. The signature is not
// checked: the API owns the key and rejects forged tokens itself.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// SessionTTL returns how long a session for token may live: until the
// token expires, never longer than max. A token without exp gets max.
func SessionTTL(token string, max time.Duration, now time.Time) (time.Duration, error) {
	exp, err := TokenExpiry(token)
	if errors.Is(err, ErrNoExpiry) {
		return max, nil
	}
	if err != nil {
		return 0, err
	}
	ttl := exp.Sub(now)
	if ttl <= 0 {
		return 0, errors.New("token already expired")
	}
	if max > 0 && ttl > max {
		ttl = max
	}
	return ttl, nil
}
