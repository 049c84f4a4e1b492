package dto

import "time"

// CreateUserRequest entrada para crear un usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee editor viewer"`
}

// UpdateUserRequest entrada parcial para actualizar un usuario. Password solo
// se re-hashea si viene presente.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin employee editor viewer"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de la contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
