package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo implementación del puerto SectionRepository sobre PostgreSQL.
type SectionRepo struct {
	q Querier
}

func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

// Create persiste una nueva sección.
func (r *SectionRepo) Create(s *entity.Section) error {
	query := `
		INSERT INTO sections (id, owner_id, name, base_type, color, order_index,
			column_labels, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OwnerID, s.Name, s.BaseType, s.Color, s.OrderIndex,
		s.ColumnLabels, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

// GetByID obtiene una sección por (id, owner); (nil, nil) si ausente o ajena.
func (r *SectionRepo) GetByID(id, ownerID string) (*entity.Section, error) {
	query := `
		SELECT id, owner_id, name, base_type, color, order_index, column_labels,
			is_active, created_at, updated_at
		FROM sections WHERE id = $1 AND owner_id = $2`
	var s entity.Section
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.BaseType, &s.Color, &s.OrderIndex,
		&s.ColumnLabels, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &s, nil
}

// ListByOwner lista las secciones del dueño ordenadas por order_index.
func (r *SectionRepo) ListByOwner(ownerID string) ([]*entity.Section, error) {
	query := `
		SELECT id, owner_id, name, base_type, color, order_index, column_labels,
			is_active, created_at, updated_at
		FROM sections WHERE owner_id = $1 ORDER BY order_index ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Section
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.BaseType, &s.Color, &s.OrderIndex,
			&s.ColumnLabels, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update lee con FOR UPDATE, parchea y reescribe en la misma transacción.
func (r *SectionRepo) Update(id, ownerID string, patch func(*entity.Section)) (*entity.Section, error) {
	ctx := context.Background()
	var out *entity.Section
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, name, base_type, color, order_index, column_labels,
				is_active, created_at, updated_at
			FROM sections WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		var s entity.Section
		err := tx.QueryRow(ctx, query, id, ownerID).Scan(
			&s.ID, &s.OwnerID, &s.Name, &s.BaseType, &s.Color, &s.OrderIndex,
			&s.ColumnLabels, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock section: %w", err)
		}
		patch(&s)
		_, err = tx.Exec(ctx, `
			UPDATE sections SET name = $3, base_type = $4, color = $5, order_index = $6,
				column_labels = $7, is_active = $8, updated_at = $9
			WHERE id = $1 AND owner_id = $2`,
			s.ID, s.OwnerID, s.Name, s.BaseType, s.Color, s.OrderIndex,
			s.ColumnLabels, s.IsActive, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update section: %w", err)
		}
		out = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la sección del par (id, owner); false si ausente o ajena.
func (r *SectionRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM sections WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete section: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
