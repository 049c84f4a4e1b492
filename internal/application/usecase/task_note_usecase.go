package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// TaskNoteUseCase reglas de negocio para notas de tarea. Misma precondición
// de propiedad del padre que NoteUseCase.
type TaskNoteUseCase struct {
	taskNotes repository.TaskNoteRepository
	tasks     repository.TaskRepository
}

// NewTaskNoteUseCase construye el caso de uso con sus puertos.
func NewTaskNoteUseCase(taskNotes repository.TaskNoteRepository, tasks repository.TaskRepository) *TaskNoteUseCase {
	return &TaskNoteUseCase{taskNotes: taskNotes, tasks: tasks}
}

// ListByTask devuelve las notas del par (taskID, propietario).
func (uc *TaskNoteUseCase) ListByTask(taskID, ownerID string) ([]dto.TaskNoteResponse, error) {
	notes, err := uc.taskNotes.ListByTask(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, *toTaskNoteResponse(n))
	}
	return out, nil
}

// Create crea la nota tras verificar que la tarea padre existe y es del
// mismo propietario; ErrParentNotFound en caso contrario.
func (uc *TaskNoteUseCase) Create(ownerID string, in dto.CreateTaskNoteRequest) (*dto.TaskNoteResponse, error) {
	parent, err := uc.tasks.GetByID(in.TaskID, ownerID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}
	now := time.Now()
	note := &entity.TaskNote{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		TaskID:    in.TaskID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.taskNotes.Create(note); err != nil {
		return nil, err
	}
	return toTaskNoteResponse(note), nil
}

// Update aplica el parche bajo la exclusión del repositorio y refresca
// UpdatedAt; nil si ausente o ajena.
func (uc *TaskNoteUseCase) Update(id, ownerID string, in dto.UpdateTaskNoteRequest) (*dto.TaskNoteResponse, error) {
	note, err := uc.taskNotes.Update(id, ownerID, func(n *entity.TaskNote) {
		if in.Content != nil {
			n.Content = *in.Content
		}
		n.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	return toTaskNoteResponse(note), nil
}

// Delete elimina la nota; false si ausente o ajena.
func (uc *TaskNoteUseCase) Delete(id, ownerID string) (bool, error) {
	return uc.taskNotes.Delete(id, ownerID)
}

func toTaskNoteResponse(n *entity.TaskNote) *dto.TaskNoteResponse {
	if n == nil {
		return nil
	}
	return &dto.TaskNoteResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		TaskID:    n.TaskID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
