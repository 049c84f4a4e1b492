package entity

import "time"

// Valores por defecto de Settings, aplicados solo en la primera creación.
const (
	DefaultOrdersSectionName = "طلبات الكهرباء"
	DefaultTasksSectionName  = "قسم إدارة المهام"
	DefaultBackgroundColor   = "#ffffff"
)

// Settings configuración por propietario (una fila por owner). Se crea de
// forma perezosa con valores por defecto en la primera escritura.
type Settings struct {
	ID                string
	OwnerID           string
	OrdersSectionName string
	TasksSectionName  string
	BackgroundColor   string
	PinHash           string // vacío = PIN no configurado; la verificación falla cerrada
	AllowGuest        bool
	CompanyLogo       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDefaultSettings construye la fila de Settings con los valores por
// defecto del esquema para un propietario.
func NewDefaultSettings(ownerID string) *Settings {
	return &Settings{
		OwnerID:           ownerID,
		OrdersSectionName: DefaultOrdersSectionName,
		TasksSectionName:  DefaultTasksSectionName,
		BackgroundColor:   DefaultBackgroundColor,
		AllowGuest:        true,
	}
}
