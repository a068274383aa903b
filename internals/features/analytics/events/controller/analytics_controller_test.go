package controller

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fikrislam_backend/internals/configs"
)

func setAnalyticsTestSecret(t *testing.T) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })
}

func signToken(t *testing.T, userID uuid.UUID, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestUserIDFromBearerAttributesValidToken(t *testing.T) {
	setAnalyticsTestSecret(t)

	userID := uuid.New()
	signed := signToken(t, userID, "unit-test-secret", time.Now().Add(time.Hour))

	got, ok := userIDFromBearer("Bearer " + signed)

	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestUserIDFromBearerFallsBackToAnonymous(t *testing.T) {
	setAnalyticsTestSecret(t)

	userID := uuid.New()
	cases := map[string]string{
		"tanpa header":     "",
		"bukan bearer":     "Basic abc123",
		"token acak":       "Bearer bukan-jwt",
		"secret salah":     "Bearer " + signToken(t, userID, "secret-lain", time.Now().Add(time.Hour)),
		"token kadaluarsa": "Bearer " + signToken(t, userID, "unit-test-secret", time.Now().Add(-time.Hour)),
	}

	for name, header := range cases {
		_, ok := userIDFromBearer(header)
		assert.False(t, ok, name)
	}
}
