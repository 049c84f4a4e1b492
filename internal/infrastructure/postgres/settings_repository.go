package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// Una fila por dueño (owner_id UNIQUE).
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByOwner obtiene la configuración del dueño; (nil, nil) si aún no existe.
func (r *SettingsRepo) GetByOwner(ownerID string) (*entity.Settings, error) {
	query := `
		SELECT id, owner_id, orders_section_name, tasks_section_name,
			background_color, pin_hash, allow_guest, company_logo, created_at, updated_at
		FROM settings WHERE owner_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, ownerID).Scan(
		&s.ID, &s.OwnerID, &s.OrdersSectionName, &s.TasksSectionName,
		&s.BackgroundColor, &s.PinHash, &s.AllowGuest, &s.CompanyLogo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o parchea la fila del dueño en una sola transacción. La fila
// existente se bloquea con FOR UPDATE antes de aplicar patch; en el camino
// de creación el UNIQUE de owner_id garantiza una sola fila aun bajo
// upserts concurrentes.
func (r *SettingsRepo) Upsert(ownerID string, create func() *entity.Settings, patch func(*entity.Settings)) (*entity.Settings, error) {
	ctx := context.Background()
	var out *entity.Settings
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, orders_section_name, tasks_section_name,
				background_color, pin_hash, allow_guest, company_logo, created_at, updated_at
			FROM settings WHERE owner_id = $1 FOR UPDATE`
		var s entity.Settings
		err := tx.QueryRow(ctx, query, ownerID).Scan(
			&s.ID, &s.OwnerID, &s.OrdersSectionName, &s.TasksSectionName,
			&s.BackgroundColor, &s.PinHash, &s.AllowGuest, &s.CompanyLogo, &s.CreatedAt, &s.UpdatedAt,
		)
		switch {
		case err == nil:
			patch(&s)
			_, err = tx.Exec(ctx, `
				UPDATE settings SET orders_section_name = $2, tasks_section_name = $3,
					background_color = $4, pin_hash = $5, allow_guest = $6, company_logo = $7, updated_at = $8
				WHERE owner_id = $1`,
				s.OwnerID, s.OrdersSectionName, s.TasksSectionName,
				s.BackgroundColor, s.PinHash, s.AllowGuest, s.CompanyLogo, s.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
		case errors.Is(err, pgx.ErrNoRows):
			fresh := create()
			patch(fresh)
			s = *fresh
			_, err = tx.Exec(ctx, `
				INSERT INTO settings (id, owner_id, orders_section_name, tasks_section_name,
					background_color, pin_hash, allow_guest, company_logo, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				s.ID, s.OwnerID, s.OrdersSectionName, s.TasksSectionName,
				s.BackgroundColor, s.PinHash, s.AllowGuest, s.CompanyLogo, s.CreatedAt, s.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert settings: %w", err)
			}
		default:
			return fmt.Errorf("lock settings: %w", err)
		}
		out = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
