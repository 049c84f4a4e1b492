// Package bootstrap siembra el estado inicial en el primer arranque:
// el usuario admin, sus secciones por defecto y los pedidos de ejemplo.
package bootstrap

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/userdefaults"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales iniciales del administrador. Deben cambiarse tras el primer
// inicio de sesión.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// Pedidos de ejemplo sembrados bajo el admin inicial en el primer arranque.
var sampleOrders = []struct {
	OrderNumber string
	PartNumber  string
}{
	{"251024435", "87-2"},
	{"25100006", "87-1"},
	{"241167299", "1322"},
	{"251016443", "152"},
	{"251016435", "1541-2"},
	{"251016376", "1441"},
	{"251016362", "59"},
	{"251016352", "1439"},
	{"251016312", "154"},
	{"251047395", "151"},
	{"251047386", "153"},
}

// Bootstrap siembra los datos del primer arranque.
type Bootstrap struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	defaults *userdefaults.UseCase

	seedOrders bool
}

// New construye el sembrador.
func New(users repository.UserRepository, orders repository.OrderRepository, defaults *userdefaults.UseCase, seedOrders bool) *Bootstrap {
	return &Bootstrap{users: users, orders: orders, defaults: defaults, seedOrders: seedOrders}
}

// Run crea el admin si no existe. Solo en ese caso aplica las secciones por
// defecto (userdefaults.Apply no es idempotente) y siembra los pedidos de
// ejemplo. Devuelve true si sembró.
func (b *Bootstrap) Run() (bool, error) {
	existing, err := b.users.GetByUsername(AdminUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := b.users.Create(admin); err != nil {
		return false, err
	}
	if err := b.defaults.Apply(admin.ID); err != nil {
		return false, err
	}

	if b.seedOrders {
		now := time.Now()
		for _, s := range sampleOrders {
			order := &entity.Order{
				ID:          uuid.New().String(),
				OwnerID:     admin.ID,
				OrderNumber: s.OrderNumber,
				PartNumber:  s.PartNumber,
				Status:      entity.StatusUnderReview,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := b.orders.Create(order); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
