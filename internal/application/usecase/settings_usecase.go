package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// SettingsUseCase configuración por propietario con semántica de upsert:
// la primera escritura crea la fila con los valores por defecto y aplica el
// parche encima; las siguientes solo mezclan el parche sobre lo existente
// (los defaults no se re-aplican jamás).
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso con su puerto.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devuelve la configuración del propietario, o nil si nunca escribió.
func (uc *SettingsUseCase) Get(ownerID string) (*dto.SettingsResponse, error) {
	st, err := uc.settings.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(st), nil
}

// Update aplica el parche con semántica de upsert y devuelve el resultado.
func (uc *SettingsUseCase) Update(ownerID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	st, err := uc.upsert(ownerID, in)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(st), nil
}

// SetPin fija el PIN de 4 dígitos del propietario, hasheado con bcrypt.
func (uc *SettingsUseCase) SetPin(ownerID, pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pinHash := string(hash)
	_, err = uc.upsert(ownerID, dto.UpdateSettingsRequest{PinHash: &pinHash})
	return err
}

// VerifyPin compara el candidato contra el hash almacenado del propietario.
// Sin configuración o sin PIN configurado la verificación falla cerrada:
// nunca se trata como error.
func (uc *SettingsUseCase) VerifyPin(candidate, ownerID string) (bool, error) {
	st, err := uc.settings.GetByOwner(ownerID)
	if err != nil {
		return false, err
	}
	if st == nil || st.PinHash == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(st.PinHash), []byte(candidate)) == nil, nil
}

func (uc *SettingsUseCase) upsert(ownerID string, in dto.UpdateSettingsRequest) (*entity.Settings, error) {
	now := time.Now()
	return uc.settings.Upsert(ownerID,
		func() *entity.Settings {
			st := entity.NewDefaultSettings(ownerID)
			st.ID = uuid.New().String()
			st.CreatedAt = now
			return st
		},
		func(st *entity.Settings) {
			applySettingsPatch(st, in)
			st.UpdatedAt = now
		})
}

func applySettingsPatch(st *entity.Settings, in dto.UpdateSettingsRequest) {
	if in.OrdersSectionName != nil {
		st.OrdersSectionName = *in.OrdersSectionName
	}
	if in.TasksSectionName != nil {
		st.TasksSectionName = *in.TasksSectionName
	}
	if in.BackgroundColor != nil {
		st.BackgroundColor = *in.BackgroundColor
	}
	if in.PinHash != nil {
		st.PinHash = *in.PinHash
	}
	if in.AllowGuest != nil {
		st.AllowGuest = *in.AllowGuest == "true"
	}
	if in.CompanyLogo != nil {
		st.CompanyLogo = *in.CompanyLogo
	}
}

func toSettingsResponse(st *entity.Settings) *dto.SettingsResponse {
	if st == nil {
		return nil
	}
	return &dto.SettingsResponse{
		ID:                st.ID,
		OwnerID:           st.OwnerID,
		OrdersSectionName: st.OrdersSectionName,
		TasksSectionName:  st.TasksSectionName,
		BackgroundColor:   st.BackgroundColor,
		AllowGuest:        strconv.FormatBool(st.AllowGuest),
		CompanyLogo:       st.CompanyLogo,
		CreatedAt:         st.CreatedAt,
		UpdatedAt:         st.UpdatedAt,
	}
}
