package middleware

import (
	"csignes/backend/config"
	"csignes/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key the auth middleware stores the user id under.
const UserIDKey = "userID"

// AuthMiddleware verifies the bearer token and stashes the user id for the
// handlers downstream.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}
