package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken ambil user_id (di-set AuthMiddleware) dari locals
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

// GetRoleFromToken ambil role resolved (di-set AuthMiddleware) dari locals
func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}
