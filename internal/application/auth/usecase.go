package auth

import (
	"fmt"
	"time"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	pkgjwt "github.com/luxuryfaisal/QimmatAlaseel/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// GuestUsername nombre visible de las sesiones de invitado ("زائر").
const GuestUsername = "زائر"

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login con credenciales y
// sesiones de invitado efímeras.
type AuthUseCase struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, settings repository.SettingsRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, settings: settings, jwtCfg: jwtCfg}
}

// Login verifica username/password con bcrypt y emite el token de sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, pkgjwt.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.LoginResponse{
		Success: true,
		User:    dto.SessionUser{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

// GuestSession sintetiza una identidad de invitado si el admin lo permite en
// su configuración. El invitado nunca se persiste: vive solo en el token.
func (uc *AuthUseCase) GuestSession() (string, *dto.LoginResponse, error) {
	admin, err := uc.users.GetByUsername("admin")
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, fmt.Errorf("usuario admin no existe")
	}
	st, err := uc.settings.GetByOwner(admin.ID)
	if err != nil {
		return "", nil, err
	}
	if st == nil || !st.AllowGuest {
		return "", nil, domain.ErrGuestNotAllowed
	}
	guestID := fmt.Sprintf("%s%d", entity.GuestIDPrefix, time.Now().UnixMilli())
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, pkgjwt.Session{
		UserID:   guestID,
		Username: GuestUsername,
		Role:     entity.RoleGuest,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.LoginResponse{
		Success: true,
		User:    dto.SessionUser{ID: guestID, Username: GuestUsername, Role: entity.RoleGuest},
	}, nil
}
