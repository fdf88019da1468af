package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-our-key"))
	require.NoError(t, err)
	return tok
}

func TestSessionTTL(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		claims jwt.MapClaims
		max    time.Duration
		want   time.Duration
	}{
		{"token shorter than cap", jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}, 8 * time.Hour, time.Hour},
		{"capped", jwt.MapClaims{"exp": now.Add(48 * time.Hour).Unix()}, 8 * time.Hour, 8 * time.Hour},
		{"no exp", jwt.MapClaims{"sub": "1"}, 8 * time.Hour, 8 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SessionTTL(signed(t, tt.claims), tt.max, now)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Seconds(), got.Seconds(), 2)
		})
	}
}

func TestSessionTTLExpired(t *testing.T) {
	_, err := SessionTTL(signed(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}), time.Hour, time.Now())
	assert.Error(t, err)
}

func TestTokenExpiryGarbage(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}
