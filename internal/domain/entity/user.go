package entity

import (
	"strings"
	"time"
)

// Roles válidos para User. "guest" nunca se persiste: es una identidad
// efímera sintetizada por sesión.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleEditor   = "editor"
	RoleViewer   = "viewer"
	RoleGuest    = "guest"
)

// GuestIDPrefix prefijo de las identidades de invitado sintetizadas.
const GuestIDPrefix = "guest_"

// User representa una cuenta del sistema. Es la raíz de tenencia: todas las
// demás entidades llevan OwnerID apuntando a un User.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ver constantes Role*
	CreatedAt    time.Time
}

// IsGuestID indica si un ID corresponde a una identidad de invitado (no persistida).
func IsGuestID(id string) bool {
	return strings.HasPrefix(id, GuestIDPrefix)
}
