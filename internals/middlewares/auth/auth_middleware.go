package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulink_backend/internals/configs"
	authModel "edulink_backend/internals/features/users/auth/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
)

// AuthMiddleware verifies the access token, then resolves the caller's
// role and school scope and stores them in Locals for the handlers and the
// role guard downstream. Unauthenticated calls get a 401 with a /login
// redirect hint (the SPA's login route).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	store := helperAuth.GormContextStore{DB: db}

	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: missing token", "/login")
		}

		// blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: token is blacklisted", "/login")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist check:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: token parse error", "/login")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: token expired", "/login")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Unauthorized: invalid or missing user ID", "/login")
		}

		// Role + school scope resolution. This never errors; a failed probe
		// degrades to an empty role that the guard will reject downstream.
		uc := helperAuth.ResolveUserContext(c.UserContext(), store, userID)
		helperAuth.SetUserContext(c, uc)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expAt := time.Unix(int64(expFloat), 0)
	if time.Now().After(expAt.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, errors.New("no user id claim")
}
