package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// NoteUseCase reglas de negocio para notas de pedido. La creación exige que
// el Order padre exista y pertenezca al mismo propietario.
type NoteUseCase struct {
	notes  repository.NoteRepository
	orders repository.OrderRepository
}

// NewNoteUseCase construye el caso de uso con sus puertos.
func NewNoteUseCase(notes repository.NoteRepository, orders repository.OrderRepository) *NoteUseCase {
	return &NoteUseCase{notes: notes, orders: orders}
}

// ListByOrder devuelve las notas del par (orderID, propietario).
func (uc *NoteUseCase) ListByOrder(orderID, ownerID string) ([]dto.NoteResponse, error) {
	notes, err := uc.notes.ListByOrder(orderID, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, *toNoteResponse(n))
	}
	return out, nil
}

// Create crea una nota tras verificar la propiedad del padre. Si el pedido
// no existe o es ajeno devuelve ErrParentNotFound sin crear nada: la
// violación de integridad referencial se propaga, nunca se silencia.
func (uc *NoteUseCase) Create(ownerID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	parent, err := uc.orders.GetByID(in.OrderID, ownerID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}
	now := time.Now()
	note := &entity.Note{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		OrderID:   in.OrderID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.notes.Create(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Update aplica el parche bajo la exclusión del repositorio y refresca
// UpdatedAt; nil si ausente o ajena.
func (uc *NoteUseCase) Update(id, ownerID string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := uc.notes.Update(id, ownerID, func(n *entity.Note) {
		if in.Content != nil {
			n.Content = *in.Content
		}
		n.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Delete elimina la nota; false si ausente o ajena.
func (uc *NoteUseCase) Delete(id, ownerID string) (bool, error) {
	return uc.notes.Delete(id, ownerID)
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		OrderID:   n.OrderID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
