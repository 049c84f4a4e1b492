package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, owner_id, task_name, task_type, last_inquiry, task_status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.OwnerID, task.TaskName, task.TaskType, task.LastInquiry,
		task.TaskStatus, task.DueDate, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por (id, owner); (nil, nil) si ausente o ajena.
func (r *TaskRepo) GetByID(id, ownerID string) (*entity.Task, error) {
	query := `
		SELECT id, owner_id, task_name, task_type, last_inquiry, task_status, due_date, created_at, updated_at
		FROM tasks WHERE id = $1 AND owner_id = $2`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.TaskName, &t.TaskType, &t.LastInquiry,
		&t.TaskStatus, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListByOwner lista las tareas del propietario, más reciente primero.
func (r *TaskRepo) ListByOwner(ownerID string) ([]*entity.Task, error) {
	query := `
		SELECT id, owner_id, task_name, task_type, last_inquiry, task_status, due_date, created_at, updated_at
		FROM tasks WHERE owner_id = $1 ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.TaskName, &t.TaskType, &t.LastInquiry,
			&t.TaskStatus, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update lee con FOR UPDATE, parchea y reescribe en la misma transacción.
func (r *TaskRepo) Update(id, ownerID string, patch func(*entity.Task)) (*entity.Task, error) {
	ctx := context.Background()
	var out *entity.Task
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, task_name, task_type, last_inquiry, task_status, due_date, created_at, updated_at
			FROM tasks WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		var t entity.Task
		err := tx.QueryRow(ctx, query, id, ownerID).Scan(
			&t.ID, &t.OwnerID, &t.TaskName, &t.TaskType, &t.LastInquiry,
			&t.TaskStatus, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock task: %w", err)
		}
		patch(&t)
		_, err = tx.Exec(ctx, `
			UPDATE tasks SET task_name = $3, task_type = $4, last_inquiry = $5, task_status = $6, due_date = $7, updated_at = $8
			WHERE id = $1 AND owner_id = $2`,
			t.ID, t.OwnerID, t.TaskName, t.TaskType, t.LastInquiry,
			t.TaskStatus, t.DueDate, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		out = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la tarea del par (id, owner); false si ausente o ajena.
func (r *TaskRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
