package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	"github.com/luxuryfaisal/QimmatAlaseel/pkg/jwt"
)

// Locals keys para la identidad de sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// Mensajes de autorización (en árabe, idioma del cliente).
const (
	msgUnauthorized    = "غير مخول للوصول"
	msgReadOnly        = "ليس لديك صلاحية للتعديل - للمشاهدة فقط"
	msgAdminOnly       = "يجب أن تكون مديراً للوصول لهذه الميزة"
	msgAdminOrEmployee = "يجب أن تكون مديراً أو موظفاً للوصول لهذه الميزة"
)

// AuthMiddleware valida el token de sesión (cookie httpOnly o header Bearer)
// y deja la identidad en c.Locals. Para invitados la identidad vive solo en
// el token; para usuarios persistidos se re-lee el rol del almacenamiento en
// cada petición, por si cambió después de emitido el token.
func AuthMiddleware(jwtSecret, cookieName string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c, cookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: msgUnauthorized})
		}
		s, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: msgUnauthorized})
		}

		if entity.IsGuestID(s.UserID) {
			c.Locals(LocalUserID, s.UserID)
			c.Locals(LocalUsername, s.Username)
			c.Locals(LocalRole, entity.RoleGuest)
			return c.Next()
		}

		user, err := users.GetByID(s.UserID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: msgUnauthorized})
		}
		role := user.Role
		if role == "" {
			role = entity.RoleViewer
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// sessionToken busca el token primero en la cookie de sesión y después en el
// header Authorization (Bearer).
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if v := c.Cookies(cookieName); v != "" {
		return v
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireWrite permite solo roles con permiso de escritura (admin, employee
// y editor). Invitados y viewers quedan en solo lectura.
func RequireWrite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch GetRole(c) {
		case entity.RoleAdmin, entity.RoleEmployee, entity.RoleEditor:
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: msgReadOnly})
	}
}

// RequireAdmin permite solo admin. El rol ya viene re-verificado del
// almacenamiento por AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: msgAdminOnly})
		}
		return c.Next()
	}
}

// RequireAdminOrEmployee permite admin o employee.
func RequireAdminOrEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role != entity.RoleAdmin && role != entity.RoleEmployee {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: msgAdminOrEmployee})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	return localString(c, LocalUsername)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
