package dto

import "time"

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required,min=1"`
	PartNumber  string `json:"partNumber"`
	LastInquiry string `json:"lastInquiry"`
	Status      string `json:"status"`
}

// UpdateOrderRequest parche de un pedido. ID y ownerId quedan fuera del tipo
// a propósito: un parche jamás puede moverlos.
type UpdateOrderRequest struct {
	OrderNumber *string `json:"orderNumber"`
	PartNumber  *string `json:"partNumber"`
	LastInquiry *string `json:"lastInquiry"`
	Status      *string `json:"status"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	OrderNumber string    `json:"orderNumber"`
	PartNumber  string    `json:"partNumber"`
	LastInquiry string    `json:"lastInquiry"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateNoteRequest entrada para crear una nota de pedido.
type CreateNoteRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateNoteRequest parche de una nota (el padre no es re-asignable).
type UpdateNoteRequest struct {
	Content *string `json:"content"`
}

// NoteResponse salida de una nota de pedido.
type NoteResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	OrderID   string    `json:"orderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
