package repository

import "github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"

// OrderRepository puerto de persistencia para Order, filtrado por propietario.
// GetByID y Delete devuelven el centinela (nil / false) tanto si el registro
// no existe como si pertenece a otro propietario.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id, ownerID string) (*entity.Order, error)
	// ListByOwner devuelve los pedidos del propietario, más reciente primero
	// (UpdatedAt descendente). Propietario ausente produce lista vacía.
	ListByOwner(ownerID string) ([]*entity.Order, error)
	// Update aplica patch sobre el registro bajo exclusión mutua: la lectura,
	// el parche y la escritura forman una sola unidad, de modo que dos
	// parches concurrentes se serializan y ninguno pisa al otro. Devuelve el
	// registro resultante, o nil si no existe o es de otro propietario.
	Update(id, ownerID string, patch func(*entity.Order)) (*entity.Order, error)
	Delete(id, ownerID string) (bool, error)
}

// NoteRepository puerto de persistencia para Note (hija de Order).
type NoteRepository interface {
	Create(note *entity.Note) error
	GetByID(id, ownerID string) (*entity.Note, error)
	ListByOrder(orderID, ownerID string) ([]*entity.Note, error)
	Update(id, ownerID string, patch func(*entity.Note)) (*entity.Note, error)
	Delete(id, ownerID string) (bool, error)
	// DeleteByOrder elimina las notas del par (orderID, ownerID); lo usa el
	// borrado en cascada de Order.
	DeleteByOrder(orderID, ownerID string) error
}
