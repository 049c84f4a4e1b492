package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/auth"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
)

// AuthHandler maneja login, logout y sesiones de invitado (público).
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	expMinutes int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, expMinutes: expMinutes}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في البيانات المرسلة"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في البيانات المرسلة"})
	}
	token, out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في البيانات المرسلة"})
	}
	h.setSessionCookie(c, token)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Guest godoc
// @Summary      Sesión de invitado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/guest [post]
func (h *AuthHandler) Guest(c *fiber.Ctx) error {
	token, out, err := h.uc.GuestSession()
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotAllowed) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في دخول الزائر"})
	}
	h.setSessionCookie(c, token)
	return c.JSON(out)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
