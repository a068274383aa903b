package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	userModel "fikrislam_backend/internals/features/users/user/model"
)

// extractBearerToken ambil token dari header Authorization atau cookie access_token
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

// validateTokenExpiry cek klaim exp dengan sedikit leeway
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		// kompat: beberapa token lama pakai "sub"
		raw, ok = claims["sub"].(string)
		if !ok || raw == "" {
			return uuid.Nil, errors.New("missing id claim")
		}
	}
	return uuid.Parse(raw)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user userModel.UserModel
	if err := db.Select("id", "is_active").First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("user inactive")
	}
	return nil
}

// storeBasicClaimsToLocals simpan role + user_name dari klaim.
// Role fallback "user" (fail-closed: tanpa record role eksplisit,
// tidak ada kapabilitas contributor/admin).
func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	role := constants.RoleUser
	if r, ok := claims["role"].(string); ok && constants.ValidRole(r) {
		role = r
	}
	c.Locals("userRole", role)

	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
}
