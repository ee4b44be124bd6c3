package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "edulink_backend/internals/features/users/auth/dto"
	authModel "edulink_backend/internals/features/users/auth/model"
	authService "edulink_backend/internals/features/users/auth/service"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(h.DB, c)
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(h.DB, c)
}

func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(h.DB, c)
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(h.DB, c)
}

func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(h.DB, c)
}

// Me returns the caller's resolved session context as stored by the auth
// middleware: user profile, role and school scope.
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized", "/login")
	}

	var user authModel.UserModel
	if dberr := h.DB.First(&user, "user_id = ?", userID).Error; dberr != nil {
		if errors.Is(dberr, gorm.ErrRecordNotFound) {
			return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "User not found", "/login")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	role := helperAuth.GetRoleFromLocals(c)
	resp := authDTO.MeResponse{
		User: authDTO.NewUserResponse(user, role, nil),
		Role: role,
	}
	if sid, serr := helperAuth.GetSchoolIDFromLocals(c); serr == nil {
		resp.SchoolID = &sid
		resp.User.SchoolID = &sid
	}
	return helper.JsonOK(c, "OK", resp)
}

// RefreshContext re-runs role/school resolution for the current principal.
// Used by the SPA after profile mutations (refreshUserData).
func (h *AuthController) RefreshContext(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized", "/login")
	}

	uc := helperAuth.ResolveUserContext(c.UserContext(), helperAuth.GormContextStore{DB: h.DB}, userID)
	helperAuth.SetUserContext(c, uc)

	return helper.JsonOK(c, "Context refreshed", fiber.Map{
		"user_id":   uc.UserID,
		"role":      uc.Role,
		"school_id": uc.SchoolID,
	})
}
