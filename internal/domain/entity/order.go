package entity

import "time"

// StatusUnderReview estado inicial de un pedido ("قيد المراجعة").
const StatusUnderReview = "قيد المراجعة"

// Order representa un pedido de cliente. Pertenece a un User (OwnerID);
// al eliminarse arrastra sus Notes.
type Order struct {
	ID          string
	OwnerID     string
	OrderNumber string
	PartNumber  string
	LastInquiry string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Note nota asociada a un Order. Solo puede crearse si el Order padre
// existe y pertenece al mismo propietario.
type Note struct {
	ID        string
	OwnerID   string
	OrderID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
