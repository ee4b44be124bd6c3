package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware after context resolution.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "user_role"
	LocalsSchoolID = "school_id"
)

var (
	ErrNoUserInContext   = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user in context")
	ErrNoSchoolInContext = fiber.NewError(fiber.StatusForbidden, "No school attached to this account")
)

func SetUserContext(c *fiber.Ctx, uc UserContext) {
	c.Locals(LocalsUserID, uc.UserID.String())
	c.Locals(LocalsUserRole, uc.Role)
	if uc.SchoolID != nil {
		c.Locals(LocalsSchoolID, uc.SchoolID.String())
	}
}

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocalsUserID).(string)
	if s == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsUserRole).(string)
	return role
}

// GetSchoolIDFromLocals returns the caller's resolved tenant scope. Every
// feature query must be filtered by this id.
func GetSchoolIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocalsSchoolID).(string)
	if s == "" {
		return uuid.Nil, ErrNoSchoolInContext
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrNoSchoolInContext
	}
	return id, nil
}
