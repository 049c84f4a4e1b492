// Package userdefaults siembra la configuración inicial de un propietario
// recién creado: sus dos secciones por defecto (pedidos y tareas).
package userdefaults

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// UseCase siembra las secciones por defecto de un propietario nuevo.
type UseCase struct {
	sections repository.SectionRepository
}

// New construye el caso de uso con su puerto.
func New(sections repository.SectionRepository) *UseCase {
	return &UseCase{sections: sections}
}

// Apply crea las dos secciones por defecto del propietario.
//
// NO es idempotente: una segunda invocación crea secciones duplicadas.
// Los flujos de alta — bootstrap y creación de usuario por admin — deben
// llamarla exactamente una vez por usuario nuevo.
func (uc *UseCase) Apply(ownerID string) error {
	now := time.Now()
	defaults := []*entity.Section{
		{
			ID:         uuid.New().String(),
			OwnerID:    ownerID,
			Name:       entity.DefaultOrdersSectionName,
			BaseType:   entity.SectionBaseOrders,
			Color:      entity.DefaultSectionColor,
			OrderIndex: 0,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New().String(),
			OwnerID:    ownerID,
			Name:       entity.DefaultTasksSectionName,
			BaseType:   entity.SectionBaseTasks,
			Color:      entity.DefaultSectionColor,
			OrderIndex: 1,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	for _, sec := range defaults {
		if err := uc.sections.Create(sec); err != nil {
			return err
		}
	}
	return nil
}
