package repository

import "github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios son globales: no llevan OwnerID, la gestión es solo-admin
// y el control de acceso vive en la capa de rutas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// Update aplica patch bajo exclusión mutua; nil si el usuario no existe.
	Update(id string, patch func(*entity.User)) (*entity.User, error)
	Delete(id string) (bool, error)
	List() ([]*entity.User, error)
}
