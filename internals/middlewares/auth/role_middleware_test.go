package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"edulink_backend/internals/constants"
	helperAuth "edulink_backend/internals/helpers/auth"
)

type guardEnvelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func newGuardedApp(userID, role string, allowed ...string) (*fiber.App, *int) {
	hits := 0
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(helperAuth.LocalsUserID, userID)
		}
		if role != "" {
			c.Locals(helperAuth.LocalsUserRole, role)
		}
		return c.Next()
	})
	app.Get("/protected", OnlyRoles("", allowed...), func(c *fiber.Ctx) error {
		hits++
		return c.SendString("ok")
	})
	return app, &hits
}

func TestRoleGuard(t *testing.T) {
	uid := uuid.NewString()

	tests := []struct {
		name         string
		userID       string
		role         string
		allowed      []string
		wantStatus   int
		wantRedirect string
		wantHits     int
	}{
		{
			name:         "unauthenticated redirects to login",
			allowed:      []string{constants.RoleAdmin},
			wantStatus:   fiber.StatusUnauthorized,
			wantRedirect: "/login",
			wantHits:     0,
		},
		{
			name:         "authenticated but role unresolved is forbidden",
			userID:       uid,
			allowed:      []string{constants.RoleAdmin},
			wantStatus:   fiber.StatusForbidden,
			wantRedirect: "/",
			wantHits:     0,
		},
		{
			name:         "role outside allowed set redirects to default route",
			userID:       uid,
			role:         constants.RoleUser,
			allowed:      []string{constants.RoleTeacher, constants.RoleAdmin},
			wantStatus:   fiber.StatusForbidden,
			wantRedirect: "/",
			wantHits:     0,
		},
		{
			name:       "allowed role renders the page",
			userID:     uid,
			role:       constants.RoleTeacher,
			allowed:    []string{constants.RoleTeacher, constants.RoleAdmin},
			wantStatus: fiber.StatusOK,
			wantHits:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, hits := newGuardedApp(tt.userID, tt.role, tt.allowed...)

			req := httptest.NewRequest("GET", "/protected", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			// the handler (the page's data fetch) must not have fired on deny
			assert.Equal(t, tt.wantHits, *hits)

			if tt.wantRedirect != "" {
				body, _ := io.ReadAll(resp.Body)
				var env guardEnvelope
				assert.NoError(t, json.Unmarshal(body, &env))
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantRedirect, env.Redirect)
			}
		})
	}
}
