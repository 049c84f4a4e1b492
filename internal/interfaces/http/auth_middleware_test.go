package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/bootstrap"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	pkgjwt "github.com/luxuryfaisal/QimmatAlaseel/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Middleware de autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenDevuelve401(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, fiber.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "غير مخول للوصول", errorMessage(t, resp))
}

func TestAuthMiddleware_TokenBasuraDevuelve401(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, fiber.MethodGet, "/api/orders", "no-es-un-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_AceptaBearerAdemasDeCookie(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	req := httptest.NewRequest(fiber.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_LaCookieTienePrioridadSobreElHeader(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	req := httptest.NewRequest(fiber.MethodGet, "/api/orders", nil)
	req.Header.Set("Cookie", fmt.Sprintf("%s=%s", testCookie, token))
	req.Header.Set("Authorization", "Bearer basura")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "un header inválido no pisa una cookie válida")
}

func TestAuthMiddleware_TokenDeUsuarioBorradoDevuelve401(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "efimero", "clave123", "editor")
	cookie := env.login(t, "efimero", "clave123")

	// Se elimina el usuario con el token todavía vigente.
	u, err := env.store.Users().GetByUsername("efimero")
	require.NoError(t, err)
	resp := env.do(t, fiber.MethodDelete, "/api/users/"+u.ID, adminCookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, "/api/orders", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "la identidad se re-verifica contra el almacenamiento")
}

func TestAuthMiddleware_RolDegradadoAplicaDeInmediato(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "mutable", "clave123", "editor")
	cookie := env.login(t, "mutable", "clave123")

	// Con rol editor puede escribir.
	resp := env.do(t, fiber.MethodPost, "/api/orders", cookie, dto.CreateOrderRequest{OrderNumber: "1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// El admin lo degrada a viewer; el token emitido sigue siendo el mismo.
	u, err := env.store.Users().GetByUsername("mutable")
	require.NoError(t, err)
	resp = env.do(t, fiber.MethodPut, "/api/users/"+u.ID, adminCookie, map[string]string{"role": "viewer"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/orders", cookie, dto.CreateOrderRequest{OrderNumber: "2"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el rol del token no manda: manda el persistido")
}

func TestAuthMiddleware_InvitadoSeResuelveSoloDelToken(t *testing.T) {
	env := newTestEnv(t)

	// Token de invitado firmado directamente, sin fila en users.
	guestID := fmt.Sprintf("%s%d", entity.GuestIDPrefix, time.Now().UnixMilli())
	token, err := pkgjwt.Generate(testSecret, pkgjwt.Session{
		UserID: guestID, Username: "زائر", Role: entity.RoleGuest,
	}, "qimmat-test", 60)
	require.NoError(t, err)

	resp := env.do(t, fiber.MethodGet, "/api/orders", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_TokenConOtroSecretoDevuelve401(t *testing.T) {
	env := newTestEnv(t)

	token, err := pkgjwt.Generate("otro-secreto", pkgjwt.Session{UserID: "u-1", Role: entity.RoleAdmin}, "qimmat-test", 60)
	require.NoError(t, err)

	resp := env.do(t, fiber.MethodGet, "/api/orders", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
