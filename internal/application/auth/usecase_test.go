package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/auth"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
	pkgjwt "github.com/luxuryfaisal/QimmatAlaseel/pkg/jwt"
)

const testSecret = "clave-de-prueba"

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "qimmat-test"}
}

// seedUser persiste un usuario con la contraseña ya hasheada.
func seedUser(t *testing.T, store *memory.Store, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, store.Users().Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasEmitenToken(t *testing.T) {
	store := memory.NewStore()
	admin := seedUser(t, store, "admin", "admin123", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(store.Users(), store.Settings(), testJWTConfig())

	token, resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, admin.ID, resp.User.ID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	// El token lleva la identidad completa.
	sess, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, sess.UserID)
	assert.Equal(t, "admin", sess.Username)
}

func TestLogin_UsuarioYContrasenaMalosDevuelvenElMismoError(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "admin", "admin123", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(store.Users(), store.Settings(), testJWTConfig())

	// No debe poder distinguirse un usuario inexistente de una contraseña mala.
	_, _, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	_, _, errBadPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errBadPass)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión de invitado
// ──────────────────────────────────────────────────────────────────────────────

func TestGuestSession_PermitidaSintetizaIdentidadEfimera(t *testing.T) {
	store := memory.NewStore()
	admin := seedUser(t, store, "admin", "admin123", entity.RoleAdmin)
	_, err := store.Settings().Upsert(admin.ID, func() *entity.Settings {
		st := entity.NewDefaultSettings(admin.ID)
		st.ID = uuid.New().String()
		return st
	}, func(st *entity.Settings) {})
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(store.Users(), store.Settings(), testJWTConfig())

	token, resp, err := uc.GuestSession()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.User.ID, entity.GuestIDPrefix))
	assert.Equal(t, auth.GuestUsername, resp.User.Username)
	assert.Equal(t, entity.RoleGuest, resp.User.Role)

	// El invitado vive solo en el token, jamás en el almacenamiento.
	persisted, err := store.Users().GetByID(resp.User.ID)
	require.NoError(t, err)
	assert.Nil(t, persisted)

	sess, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sess.UserID)
}

func TestGuestSession_DeshabilitadaPorElAdminFalla(t *testing.T) {
	store := memory.NewStore()
	admin := seedUser(t, store, "admin", "admin123", entity.RoleAdmin)
	_, err := store.Settings().Upsert(admin.ID, func() *entity.Settings {
		st := entity.NewDefaultSettings(admin.ID)
		st.ID = uuid.New().String()
		return st
	}, func(st *entity.Settings) {
		st.AllowGuest = false
	})
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(store.Users(), store.Settings(), testJWTConfig())

	_, _, err = uc.GuestSession()
	assert.ErrorIs(t, err, domain.ErrGuestNotAllowed)
}

func TestGuestSession_SinConfiguracionDelAdminFalla(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "admin", "admin123", entity.RoleAdmin)

	uc := auth.NewAuthUseCase(store.Users(), store.Settings(), testJWTConfig())

	_, _, err := uc.GuestSession()
	assert.ErrorIs(t, err, domain.ErrGuestNotAllowed, "sin fila de settings el acceso de invitado queda cerrado")
}
