package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fikrislam_backend/internals/configs"
	userModel "fikrislam_backend/internals/features/users/user/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldJWT, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "unit-test-secret"
	configs.JWTRefreshSecret = "unit-test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldJWT
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestGenerateAccessTokenCarriesRoleClaim(t *testing.T) {
	setTestSecrets(t)

	user := &userModel.UserModel{ID: uuid.New(), UserName: "ahmad"}
	signed, exp, err := GenerateAccessToken(user, "contributor")

	assert.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("unit-test-secret"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "ahmad", claims["user_name"])
	assert.Equal(t, "contributor", claims["role"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	user := &userModel.UserModel{ID: uuid.New(), UserName: "ahmad"}
	signed, _, err := GenerateRefreshToken(user)
	assert.NoError(t, err)

	id, err := ParseRefreshToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), id)

	// token yang diubah harus ditolak
	_, err = ParseRefreshToken(signed + "x")
	assert.Error(t, err)
}

func TestGenerateResetTokenIsOpaqueHex(t *testing.T) {
	token, expiresAt := GenerateResetToken()

	assert.Len(t, token, 64) // 32 byte hex
	assert.NotContains(t, token, ".")
	assert.True(t, expiresAt.After(time.Now()))

	other, _ := GenerateResetToken()
	assert.NotEqual(t, token, other)
}
