package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserDefaultsApplier siembra la configuración inicial de un propietario
// nuevo. NO es idempotente: debe invocarse exactamente una vez por usuario.
type UserDefaultsApplier interface {
	Apply(ownerID string) error
}

// UserUseCase gestión de usuarios (ámbito admin, no filtrado por
// propietario). La contraseña se hashea antes de persistir y solo se
// re-hashea en update si viene presente.
type UserUseCase struct {
	users    repository.UserRepository
	defaults UserDefaultsApplier
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(users repository.UserRepository, defaults UserDefaultsApplier) *UserUseCase {
	return &UserUseCase{users: users, defaults: defaults}
}

// List devuelve todos los usuarios (sin hash de contraseña en la salida).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Get devuelve un usuario por ID, o nil si no existe.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Create crea un usuario con la contraseña hasheada y siembra sus secciones
// por defecto (una sola vez, aquí).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAdmin // default del esquema de usuarios
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	if uc.defaults != nil {
		if err := uc.defaults.Apply(user.ID); err != nil {
			return nil, err
		}
	}
	return toUserResponse(user), nil
}

// Update aplica el parche bajo la exclusión del repositorio; re-hashea la
// contraseña solo si viene en el parche. Devuelve nil si el usuario no
// existe. El hash se calcula fuera del parche para no hacer trabajo de
// bcrypt con la fila bloqueada.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var passwordHash string
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}
	user, err := uc.users.Update(id, func(u *entity.User) {
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if passwordHash != "" {
			u.PasswordHash = passwordHash
		}
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario; false si no existe.
func (uc *UserUseCase) Delete(id string) (bool, error) {
	return uc.users.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
