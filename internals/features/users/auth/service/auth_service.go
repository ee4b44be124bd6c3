package service

import (
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edulink_backend/internals/configs"
	authDTO "edulink_backend/internals/features/users/auth/dto"
	authModel "edulink_backend/internals/features/users/auth/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

/* =========================================================
   REGISTER
========================================================= */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("lower(user_email) = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Account created", authDTO.NewUserResponse(user, user.UserRole, nil))
}

/* =========================================================
   LOGIN (email/password)
========================================================= */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user authModel.UserModel
	err := db.Where("lower(user_email) = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueSession(db, c, user)
}

/* =========================================================
   LOGIN (Google id-token)
========================================================= */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing id_token")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token claims")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))

	var user authModel.UserModel
	err = db.Where("lower(user_email) = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first Google sign-in: create a user row with an unusable password
		hashed, herr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
		}
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = email
		}
		user = authModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: string(hashed),
		}
		if cerr := db.Create(&user).Error; cerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been deactivated")
	}

	return issueSession(db, c, user)
}

/* =========================================================
   SESSION ISSUANCE
========================================================= */

func issueSession(db *gorm.DB, c *fiber.Ctx, user authModel.UserModel) error {
	uc := helperAuth.ResolveUserContext(c.UserContext(), helperAuth.GormContextStore{DB: db}, user.UserID)

	now := nowUTC()
	accessToken, err := buildAccessToken(user.UserID, uc, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refreshToken, err := buildRefreshToken(user.UserID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	hash := sha256.Sum256([]byte(refreshToken))
	rt := authModel.RefreshTokenModel{
		UserID:    user.UserID,
		TokenHash: hash[:],
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		log.Println("[ERROR] persist refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		User:         authDTO.NewUserResponse(user, uc.Role, uc.SchoolID),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func buildAccessToken(userID uuid.UUID, uc helperAuth.UserContext, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID.String(),
		"role": uc.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if uc.SchoolID != nil {
		claims["school_id"] = uc.SchoolID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func buildRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
}

/* =========================================================
   REFRESH
========================================================= */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Missing refresh token", "/login")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Invalid refresh token", "/login")
	}
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Invalid refresh token", "/login")
	}

	hash := sha256.Sum256([]byte(raw))
	var rt authModel.RefreshTokenModel
	err = db.Where("user_id = ? AND token_hash = ? AND expires_at > ?", userID, hash[:], nowUTC()).
		First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "Refresh token revoked", "/login")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}

	var user authModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonErrorRedirect(c, fiber.StatusUnauthorized, "User not found", "/login")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been deactivated")
	}

	// rotate: drop the old row, issue a fresh pair
	if err := db.Delete(&rt).Error; err != nil {
		log.Println("[WARN] refresh token rotation delete:", err)
	}
	return issueSession(db, c, user)
}

/* =========================================================
   LOGOUT
========================================================= */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		entry := authModel.TokenBlacklistModel{
			Token:     raw,
			ExpiresAt: resolveBlacklistExpiry(raw),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Println("[ERROR] blacklist insert:", err)
		}
	}
	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		hash := sha256.Sum256([]byte(rt))
		if err := db.Where("token_hash = ?", hash[:]).
			Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
			log.Println("[WARN] refresh token revoke:", err)
		}
	}

	expired := time.Unix(0, 0)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})

	return helper.JsonOK(c, "Logged out", fiber.Map{"redirect": "/login"})
}

// resolveBlacklistExpiry keeps the row only as long as the token itself
// could still be replayed.
func resolveBlacklistExpiry(accessToken string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(expFloat), 0)
		}
	}
	return nowUTC().Add(accessTokenTTL)
}
