package repository

import "github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"

// TaskRepository puerto de persistencia para Task, filtrado por propietario.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id, ownerID string) (*entity.Task, error)
	// ListByOwner devuelve las tareas del propietario, UpdatedAt descendente.
	ListByOwner(ownerID string) ([]*entity.Task, error)
	Update(id, ownerID string, patch func(*entity.Task)) (*entity.Task, error)
	Delete(id, ownerID string) (bool, error)
}

// TaskNoteRepository puerto de persistencia para TaskNote (hija de Task).
type TaskNoteRepository interface {
	Create(note *entity.TaskNote) error
	GetByID(id, ownerID string) (*entity.TaskNote, error)
	ListByTask(taskID, ownerID string) ([]*entity.TaskNote, error)
	Update(id, ownerID string, patch func(*entity.TaskNote)) (*entity.TaskNote, error)
	Delete(id, ownerID string) (bool, error)
	DeleteByTask(taskID, ownerID string) error
}

// AttachmentRepository puerto de persistencia para Attachment (hija de Task).
type AttachmentRepository interface {
	Create(att *entity.Attachment) error
	ListByTask(taskID, ownerID string) ([]*entity.Attachment, error)
	CountByTask(taskID, ownerID string) (int, error)
	Delete(id, ownerID string) (bool, error)
	DeleteByTask(taskID, ownerID string) error
}
