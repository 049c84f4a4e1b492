package dto

import "time"

// UpdateSettingsRequest parche de la configuración del propietario.
// Los campos booleanos viajan como "true"/"false" (convención del cliente
// web); la conversión a tipos reales ocurre en el caso de uso.
type UpdateSettingsRequest struct {
	OrdersSectionName *string `json:"ordersSectionName"`
	TasksSectionName  *string `json:"tasksSectionName"`
	BackgroundColor   *string `json:"backgroundColor"`
	PinHash           *string `json:"pinHash"`
	AllowGuest        *string `json:"allowGuest" validate:"omitempty,oneof=true false"`
	CompanyLogo       *string `json:"companyLogo"`
}

// SettingsResponse salida de la configuración. PinHash no se expone.
type SettingsResponse struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"ownerId"`
	OrdersSectionName string    `json:"ordersSectionName"`
	TasksSectionName  string    `json:"tasksSectionName"`
	BackgroundColor   string    `json:"backgroundColor"`
	AllowGuest        string    `json:"allowGuest"`
	CompanyLogo       string    `json:"companyLogo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateSectionRequest entrada para crear una sección.
type CreateSectionRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	BaseType     string `json:"baseType" validate:"required,oneof=orders tasks"`
	Color        string `json:"color"`
	OrderIndex   string `json:"orderIndex"`
	ColumnLabels string `json:"columnLabels"`
	IsActive     string `json:"isActive" validate:"omitempty,oneof=true false"`
}

// UpdateSectionRequest parche de una sección.
type UpdateSectionRequest struct {
	Name         *string `json:"name"`
	BaseType     *string `json:"baseType" validate:"omitempty,oneof=orders tasks"`
	Color        *string `json:"color"`
	OrderIndex   *string `json:"orderIndex"`
	ColumnLabels *string `json:"columnLabels"`
	IsActive     *string `json:"isActive" validate:"omitempty,oneof=true false"`
}

// SectionResponse salida de una sección. OrderIndex e IsActive viajan como
// string (convención del cliente web).
type SectionResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	BaseType     string    `json:"baseType"`
	Color        string    `json:"color"`
	OrderIndex   string    `json:"orderIndex"`
	ColumnLabels string    `json:"columnLabels"`
	IsActive     string    `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
