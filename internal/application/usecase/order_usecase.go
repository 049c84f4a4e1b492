package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// OrderUseCase reglas de negocio para pedidos: sella el propietario,
// aplica valores por defecto y orquesta el borrado en cascada de notas.
type OrderUseCase struct {
	orders repository.OrderRepository
	tx     TxRunner
}

// NewOrderUseCase construye el caso de uso con sus puertos.
func NewOrderUseCase(orders repository.OrderRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, tx: tx}
}

// List devuelve los pedidos del propietario, más reciente primero.
func (uc *OrderUseCase) List(ownerID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Get devuelve el pedido si existe y pertenece al propietario; nil en otro caso.
func (uc *OrderUseCase) Get(id, ownerID string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Create crea un pedido sellado con el propietario y el estado por defecto.
func (uc *OrderUseCase) Create(ownerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.StatusUnderReview
	}
	order := &entity.Order{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		OrderNumber: in.OrderNumber,
		PartNumber:  in.PartNumber,
		LastInquiry: in.LastInquiry,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update aplica el parche campo a campo bajo la exclusión del repositorio
// (lectura y escritura son una sola unidad: dos parches concurrentes no se
// pisan) y refresca UpdatedAt. Devuelve nil si el pedido no existe o no es
// del propietario.
func (uc *OrderUseCase) Update(id, ownerID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.Update(id, ownerID, func(o *entity.Order) {
		if in.OrderNumber != nil {
			o.OrderNumber = *in.OrderNumber
		}
		if in.PartNumber != nil {
			o.PartNumber = *in.PartNumber
		}
		if in.LastInquiry != nil {
			o.LastInquiry = *in.LastInquiry
		}
		if in.Status != nil {
			o.Status = *in.Status
		}
		o.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina el pedido y sus notas en una sola unidad atómica.
// Devuelve false si el pedido no existe o no es del propietario; en ese caso
// no toca ninguna nota.
func (uc *OrderUseCase) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	deleted := false
	err := uc.tx.RunOrderCascade(ctx, func(orders repository.OrderRepository, notes repository.NoteRepository) error {
		ok, err := orders.Delete(id, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		deleted = true
		return notes.DeleteByOrder(id, ownerID)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		OrderNumber: o.OrderNumber,
		PartNumber:  o.PartNumber,
		LastInquiry: o.LastInquiry,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
