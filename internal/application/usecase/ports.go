package usecase

import (
	"context"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// TxRunner ejecuta los borrados en cascada como una sola unidad atómica.
// El adaptador postgres abre una transacción; el adaptador de memoria
// retiene el mutex de escritura durante toda la secuencia leer-filtrar-borrar.
type TxRunner interface {
	RunOrderCascade(ctx context.Context, fn func(
		orders repository.OrderRepository,
		notes repository.NoteRepository,
	) error) error

	RunTaskCascade(ctx context.Context, fn func(
		tasks repository.TaskRepository,
		taskNotes repository.TaskNoteRepository,
		attachments repository.AttachmentRepository,
	) error) error
}
