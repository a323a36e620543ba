package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labcontrol_backend/internals/configs"
	tokenModel "labcontrol_backend/internals/features/users/auth/model"
	authService "labcontrol_backend/internals/features/users/auth/service"
)

// AuthMiddleware guards the admin API. A request passes when it carries
// a bearer token that (1) verifies against JWT_SECRET and (2) still has
// a live row in auth_tokens — logout deletes the row, so deleted tokens
// are rejected even before their exp.
//
// JWT_AUTH_ENABLED=false disables the whole check for local kiosk
// development.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !configs.JWTAuthEnabled {
			return c.Next()
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		claims, err := authService.ParseAdminToken(tokenString)
		if err != nil {
			log.Printf("[AUTH] token rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Revocation check: logout removes the row.
		var stored tokenModel.TokenModel
		if err := db.Where("token_value = ?", tokenString).First(&stored).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been revoked"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
		}
		if time.Now().After(stored.TokenExpiresAt) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		if adminID, ok := claims["admin_id"].(string); ok {
			c.Locals("admin_id", adminID)
		}
		if userID, ok := claims["user_id"].(string); ok {
			c.Locals("user_id", userID)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", errors.New("Missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
