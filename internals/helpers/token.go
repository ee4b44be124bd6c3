package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken pulls the bearer token from the Authorization header,
// falling back to the access_token cookie (SPA refresh flow).
func GetRawAccessToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authz != "" {
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
