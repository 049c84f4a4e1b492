package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta las cascadas de borrado dentro de una transacción pgx.
// Los repositorios que recibe el callback están ligados a la tx, no al pool.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) RunOrderCascade(ctx context.Context, fn func(
	orders repository.OrderRepository,
	notes repository.NoteRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewOrderRepository(q), NewNoteRepository(q))
	})
}

func (t *TxRunner) RunTaskCascade(ctx context.Context, fn func(
	tasks repository.TaskRepository,
	taskNotes repository.TaskNoteRepository,
	attachments repository.AttachmentRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewTaskRepository(q), NewTaskNoteRepository(q), NewAttachmentRepository(q))
	})
}

func (t *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
