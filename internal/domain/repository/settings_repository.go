package repository

import "github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"

// SettingsRepository puerto de persistencia para Settings (singular por
// propietario).
type SettingsRepository interface {
	GetByOwner(ownerID string) (*entity.Settings, error)
	// Upsert crea o parchea la fila del propietario como una sola unidad:
	// si no existe, create construye la fila base y patch se aplica encima;
	// si existe, solo se aplica patch. Dos upserts concurrentes se
	// serializan y nunca producen dos filas ni pierden un parche.
	Upsert(ownerID string, create func() *entity.Settings, patch func(*entity.Settings)) (*entity.Settings, error)
}

// SectionRepository puerto de persistencia para Section.
type SectionRepository interface {
	Create(sec *entity.Section) error
	GetByID(id, ownerID string) (*entity.Section, error)
	// ListByOwner devuelve las secciones del propietario ordenadas por
	// OrderIndex ascendente (comparación numérica, no lexicográfica).
	ListByOwner(ownerID string) ([]*entity.Section, error)
	Update(id, ownerID string, patch func(*entity.Section)) (*entity.Section, error)
	Delete(id, ownerID string) (bool, error)
}
