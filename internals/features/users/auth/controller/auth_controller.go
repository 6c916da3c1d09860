package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktagkk_backend/internals/configs"
	authModel "ktagkk_backend/internals/features/users/auth/model"
	userModel "ktagkk_backend/internals/features/users/user/model"
	helper "ktagkk_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const tokenLifetime = 12 * time.Hour

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

/* ======================= LOGIN ======================= */
// POST /auth/login — JWT di body + cookie access_token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	err := h.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan, hubungi admin")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}
	if user.UserRegionID != nil {
		claims["region_id"] = user.UserRegionID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Gagal sign token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  now.Add(tokenLifetime),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	log.Printf("✅ Login %s (%s)", user.UserEmail, user.UserRole)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": signed,
		"user": fiber.Map{
			"user_id":        user.UserID,
			"user_name":      user.UserName,
			"user_email":     user.UserEmail,
			"user_role":      user.UserRole,
			"user_region_id": user.UserRegionID,
		},
	})
}

/* ======================= LOGOUT ======================= */
// POST /auth/logout — token masuk blacklist sampai exp-nya lewat.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	expiredAt := time.Now().Add(tokenLifetime)
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := h.DB.Create(&entry).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if !strings.Contains(msg, "duplicate") && !strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ======================= ME ======================= */
// GET /auth/me — murni dari klaim token, tanpa query DB.
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	regionID, err := helper.GetRegionIDFromToken(c)
	if err != nil {
		return err
	}
	name, _ := c.Locals("user_name").(string)

	return helper.JsonOK(c, "OK", fiber.Map{
		"user_id":        userID,
		"user_name":      name,
		"user_role":      role,
		"user_region_id": regionID,
	})
}
