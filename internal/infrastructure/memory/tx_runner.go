package memory

import (
	"context"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ usecase.TxRunner = (*Store)(nil)

// RunOrderCascade ejecuta fn reteniendo el lock de escritura completo, de
// modo que la secuencia borrar-pedido + borrar-notas es atómica frente a
// lectores y escritores concurrentes. Los repos que recibe fn son vistas sin
// bloqueo propio.
func (s *Store) RunOrderCascade(_ context.Context, fn func(
	orders repository.OrderRepository,
	notes repository.NoteRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(orderRepo{s: s, inTx: true}, noteRepo{s: s, inTx: true})
}

// RunTaskCascade análogo a RunOrderCascade para Task + TaskNotes + Attachments.
func (s *Store) RunTaskCascade(_ context.Context, fn func(
	tasks repository.TaskRepository,
	taskNotes repository.TaskNoteRepository,
	attachments repository.AttachmentRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(
		taskRepo{s: s, inTx: true},
		taskNoteRepo{s: s, inTx: true},
		attachmentRepo{s: s, inTx: true},
	)
}
