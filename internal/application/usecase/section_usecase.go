package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// SectionUseCase reglas de negocio para secciones. OrderIndex e IsActive
// llegan como string del cliente (convención del cliente web) y se
// convierten aquí a tipos reales.
type SectionUseCase struct {
	sections repository.SectionRepository
}

// NewSectionUseCase construye el caso de uso con su puerto.
func NewSectionUseCase(sections repository.SectionRepository) *SectionUseCase {
	return &SectionUseCase{sections: sections}
}

// List devuelve las secciones del propietario ordenadas por OrderIndex.
func (uc *SectionUseCase) List(ownerID string) ([]dto.SectionResponse, error) {
	secs, err := uc.sections.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SectionResponse, 0, len(secs))
	for _, s := range secs {
		out = append(out, *toSectionResponse(s))
	}
	return out, nil
}

// Create crea una sección con los valores por defecto del esquema.
func (uc *SectionUseCase) Create(ownerID string, in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	now := time.Now()
	color := in.Color
	if color == "" {
		color = entity.DefaultSectionColor
	}
	orderIndex := 0
	if in.OrderIndex != "" {
		n, err := strconv.Atoi(in.OrderIndex)
		if err == nil {
			orderIndex = n
		}
	}
	isActive := in.IsActive != "false"
	sec := &entity.Section{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         in.Name,
		BaseType:     in.BaseType,
		Color:        color,
		OrderIndex:   orderIndex,
		ColumnLabels: in.ColumnLabels,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.sections.Create(sec); err != nil {
		return nil, err
	}
	return toSectionResponse(sec), nil
}

// Update aplica el parche campo a campo bajo la exclusión del repositorio;
// nil si ausente o ajena.
func (uc *SectionUseCase) Update(id, ownerID string, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	sec, err := uc.sections.Update(id, ownerID, func(s *entity.Section) {
		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.BaseType != nil {
			s.BaseType = *in.BaseType
		}
		if in.Color != nil {
			s.Color = *in.Color
		}
		if in.OrderIndex != nil {
			if n, err := strconv.Atoi(*in.OrderIndex); err == nil {
				s.OrderIndex = n
			}
		}
		if in.ColumnLabels != nil {
			s.ColumnLabels = *in.ColumnLabels
		}
		if in.IsActive != nil {
			s.IsActive = *in.IsActive == "true"
		}
		s.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	return toSectionResponse(sec), nil
}

// Delete elimina la sección; false si ausente o ajena. Las secciones no
// tienen dependientes: no hay cascada.
func (uc *SectionUseCase) Delete(id, ownerID string) (bool, error) {
	return uc.sections.Delete(id, ownerID)
}

func toSectionResponse(s *entity.Section) *dto.SectionResponse {
	if s == nil {
		return nil
	}
	return &dto.SectionResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		BaseType:     s.BaseType,
		Color:        s.Color,
		OrderIndex:   strconv.Itoa(s.OrderIndex),
		ColumnLabels: s.ColumnLabels,
		IsActive:     strconv.FormatBool(s.IsActive),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
