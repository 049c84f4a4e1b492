package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nueva nota.
func (r *NoteRepo) Create(note *entity.Note) error {
	query := `
		INSERT INTO notes (id, owner_id, order_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.OwnerID, note.OrderID, note.Content, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por (id, owner); (nil, nil) si ausente o ajena.
func (r *NoteRepo) GetByID(id, ownerID string) (*entity.Note, error) {
	query := `
		SELECT id, owner_id, order_id, content, created_at, updated_at
		FROM notes WHERE id = $1 AND owner_id = $2`
	var n entity.Note
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&n.ID, &n.OwnerID, &n.OrderID, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

// ListByOrder lista las notas del par (order_id, owner_id).
func (r *NoteRepo) ListByOrder(orderID, ownerID string) ([]*entity.Note, error) {
	query := `
		SELECT id, owner_id, order_id, content, created_at, updated_at
		FROM notes WHERE order_id = $1 AND owner_id = $2`
	rows, err := r.q.Query(context.Background(), query, orderID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.OrderID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Update lee con FOR UPDATE, parchea y reescribe en la misma transacción.
func (r *NoteRepo) Update(id, ownerID string, patch func(*entity.Note)) (*entity.Note, error) {
	ctx := context.Background()
	var out *entity.Note
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, order_id, content, created_at, updated_at
			FROM notes WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		var n entity.Note
		err := tx.QueryRow(ctx, query, id, ownerID).Scan(
			&n.ID, &n.OwnerID, &n.OrderID, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock note: %w", err)
		}
		patch(&n)
		_, err = tx.Exec(ctx, `
			UPDATE notes SET content = $3, updated_at = $4
			WHERE id = $1 AND owner_id = $2`,
			n.ID, n.OwnerID, n.Content, n.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		out = &n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la nota del par (id, owner); false si ausente o ajena.
func (r *NoteRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByOrder elimina las notas del par (order_id, owner_id); lo usa la
// cascada de Order.
func (r *NoteRepo) DeleteByOrder(orderID, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notes WHERE order_id = $1 AND owner_id = $2`, orderID, ownerID)
	if err != nil {
		return fmt.Errorf("delete notes by order: %w", err)
	}
	return nil
}
