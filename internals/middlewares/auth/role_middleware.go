package auth

import (
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
)

// RoleMiddlewareWithCustomError gates a subtree by role membership.
// States mirror the SPA route guard: no resolved principal -> 401 with a
// /login redirect hint; role outside the allowed set -> 403 with the
// default landing route. Only an allowed role reaches the handler, so a
// denied page's data fetch never fires.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromLocals(c)
		if role == "" {
			if _, err := helperAuth.GetUserIDFromLocals(c); err != nil {
				return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: missing role information", "/login")
			}
			// authenticated but role unresolved: treat as unauthorized
			return helper.JsonErrorRedirect(c, fiber.StatusForbidden, "Forbidden: no role resolved for this account", "/")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonErrorRedirect(c, fiber.StatusForbidden, customForbiddenMessage, "/")
	}
}

// OnlyRoles is the short form used by the route tables.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
