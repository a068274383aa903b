package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"fikrislam_backend/internals/configs"
	userModel "fikrislam_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
	resetTTLDefault   = 30 * time.Minute
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// GenerateAccessToken: klaim membawa id + user_name + role (role berlaku
// sepanjang umur token; lihat catatan staleness di AuthMiddleware)
func GenerateAccessToken(user *userModel.UserModel, role string) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      role,
		"exp":       exp.Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return signed, exp, nil
}

func GenerateRefreshToken(user *userModel.UserModel) (string, time.Time, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	exp := time.Now().Add(refreshTTLDefault)
	claims := jwt.MapClaims{
		"id":  user.ID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	return signed, exp, nil
}

// ParseRefreshToken verifikasi tanda tangan + exp, kembalikan user id (klaim "id")
func ParseRefreshToken(tokenString string) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	return id, nil
}

// GenerateResetToken token opaque utk reset password (bukan JWT)
func GenerateResetToken() (string, time.Time) {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b), time.Now().Add(resetTTLDefault)
}

// AccessTokenExpiry ambil exp dari access token tanpa validasi penuh
// (dipakai saat logout utk TTL blacklist)
func AccessTokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	secret, err := getJWTSecret()
	if err != nil {
		return time.Now().Add(accessTTLDefault)
	}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return time.Now().Add(accessTTLDefault)
	}
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return time.Now().Add(accessTTLDefault)
}
