package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// TaskUseCase reglas de negocio para tareas. El borrado arrastra notas de
// tarea y adjuntos del mismo propietario en una sola unidad atómica.
type TaskUseCase struct {
	tasks repository.TaskRepository
	tx    TxRunner
}

// NewTaskUseCase construye el caso de uso con sus puertos.
func NewTaskUseCase(tasks repository.TaskRepository, tx TxRunner) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, tx: tx}
}

// List devuelve las tareas del propietario, más reciente primero.
func (uc *TaskUseCase) List(ownerID string) ([]dto.TaskResponse, error) {
	tasks, err := uc.tasks.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

// Get devuelve la tarea si existe y pertenece al propietario; nil en otro caso.
func (uc *TaskUseCase) Get(id, ownerID string) (*dto.TaskResponse, error) {
	t, err := uc.tasks.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

// Create crea una tarea sellada con el propietario y el estado por defecto.
func (uc *TaskUseCase) Create(ownerID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	now := time.Now()
	status := in.TaskStatus
	if status == "" {
		status = entity.TaskStatusInProgress
	}
	task := &entity.Task{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		TaskName:    in.TaskName,
		TaskType:    in.TaskType,
		LastInquiry: in.LastInquiry,
		TaskStatus:  status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tasks.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update aplica el parche campo a campo bajo la exclusión del repositorio y
// refresca UpdatedAt; nil si ausente o ajena.
func (uc *TaskUseCase) Update(id, ownerID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.tasks.Update(id, ownerID, func(t *entity.Task) {
		if in.TaskName != nil {
			t.TaskName = *in.TaskName
		}
		if in.TaskType != nil {
			t.TaskType = *in.TaskType
		}
		if in.LastInquiry != nil {
			t.LastInquiry = *in.LastInquiry
		}
		if in.TaskStatus != nil {
			t.TaskStatus = *in.TaskStatus
		}
		if in.DueDate != nil {
			t.DueDate = *in.DueDate
		}
		t.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina la tarea con sus notas y adjuntos; false si ausente o ajena,
// sin tocar dependientes.
func (uc *TaskUseCase) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	deleted := false
	err := uc.tx.RunTaskCascade(ctx, func(
		tasks repository.TaskRepository,
		taskNotes repository.TaskNoteRepository,
		attachments repository.AttachmentRepository,
	) error {
		ok, err := tasks.Delete(id, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		deleted = true
		if err := taskNotes.DeleteByTask(id, ownerID); err != nil {
			return err
		}
		return attachments.DeleteByTask(id, ownerID)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		TaskName:    t.TaskName,
		TaskType:    t.TaskType,
		LastInquiry: t.LastInquiry,
		TaskStatus:  t.TaskStatus,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
