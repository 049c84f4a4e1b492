package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.TaskNoteRepository = (*TaskNoteRepo)(nil)

// TaskNoteRepo implementación del puerto TaskNoteRepository sobre PostgreSQL.
type TaskNoteRepo struct {
	q Querier
}

// NewTaskNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskNoteRepository(q Querier) *TaskNoteRepo {
	return &TaskNoteRepo{q: q}
}

// Create persiste una nueva nota de tarea.
func (r *TaskNoteRepo) Create(note *entity.TaskNote) error {
	query := `
		INSERT INTO task_notes (id, owner_id, task_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.OwnerID, note.TaskID, note.Content, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota de tarea por (id, owner); (nil, nil) si ausente o ajena.
func (r *TaskNoteRepo) GetByID(id, ownerID string) (*entity.TaskNote, error) {
	query := `
		SELECT id, owner_id, task_id, content, created_at, updated_at
		FROM task_notes WHERE id = $1 AND owner_id = $2`
	var n entity.TaskNote
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&n.ID, &n.OwnerID, &n.TaskID, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task note: %w", err)
	}
	return &n, nil
}

// ListByTask lista las notas del par (task_id, owner_id).
func (r *TaskNoteRepo) ListByTask(taskID, ownerID string) ([]*entity.TaskNote, error) {
	query := `
		SELECT id, owner_id, task_id, content, created_at, updated_at
		FROM task_notes WHERE task_id = $1 AND owner_id = $2`
	rows, err := r.q.Query(context.Background(), query, taskID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list task notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaskNote
	for rows.Next() {
		var n entity.TaskNote
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.TaskID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Update lee con FOR UPDATE, parchea y reescribe en la misma transacción.
func (r *TaskNoteRepo) Update(id, ownerID string, patch func(*entity.TaskNote)) (*entity.TaskNote, error) {
	ctx := context.Background()
	var out *entity.TaskNote
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, task_id, content, created_at, updated_at
			FROM task_notes WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		var n entity.TaskNote
		err := tx.QueryRow(ctx, query, id, ownerID).Scan(
			&n.ID, &n.OwnerID, &n.TaskID, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock task note: %w", err)
		}
		patch(&n)
		_, err = tx.Exec(ctx, `
			UPDATE task_notes SET content = $3, updated_at = $4
			WHERE id = $1 AND owner_id = $2`,
			n.ID, n.OwnerID, n.Content, n.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update task note: %w", err)
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
func (r *TaskNoteRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM task_notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete task note: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByTask elimina las notas del par (task_id, owner_id); lo usa la
// cascada de Task.
func (r *TaskNoteRepo) DeleteByTask(taskID, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM task_notes WHERE task_id = $1 AND owner_id = $2`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task notes by task: %w", err)
	}
	return nil
}
