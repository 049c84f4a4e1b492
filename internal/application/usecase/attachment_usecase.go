package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// MaxAttachmentsPerTask tope de adjuntos por tarea.
const MaxAttachmentsPerTask = 10

// AttachmentUseCase reglas de negocio para adjuntos de tarea. El tipo MIME y
// el tamaño máximo los valida la capa de rutas; aquí solo propiedad del
// padre y tope de cantidad.
type AttachmentUseCase struct {
	attachments repository.AttachmentRepository
	tasks       repository.TaskRepository
}

// NewAttachmentUseCase construye el caso de uso con sus puertos.
func NewAttachmentUseCase(attachments repository.AttachmentRepository, tasks repository.TaskRepository) *AttachmentUseCase {
	return &AttachmentUseCase{attachments: attachments, tasks: tasks}
}

// ListByTask devuelve los adjuntos del par (taskID, propietario).
func (uc *AttachmentUseCase) ListByTask(taskID, ownerID string) ([]dto.AttachmentResponse, error) {
	atts, err := uc.attachments.ListByTask(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttachmentResponse, 0, len(atts))
	for _, a := range atts {
		out = append(out, *toAttachmentResponse(a))
	}
	return out, nil
}

// Create adjunta una imagen a la tarea. size es el tamaño decodificado real
// en bytes, ya recalculado por la capa de rutas a partir del payload.
func (uc *AttachmentUseCase) Create(ownerID string, in dto.CreateAttachmentRequest, size int64) (*dto.AttachmentResponse, error) {
	parent, err := uc.tasks.GetByID(in.TaskID, ownerID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}
	count, err := uc.attachments.CountByTask(in.TaskID, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= MaxAttachmentsPerTask {
		return nil, domain.ErrAttachmentLimit
	}
	att := &entity.Attachment{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		TaskID:     in.TaskID,
		Filename:   in.Filename,
		MimeType:   in.MimeType,
		DataBase64: in.DataBase64,
		Size:       size,
		CreatedAt:  time.Now(),
	}
	if err := uc.attachments.Create(att); err != nil {
		return nil, err
	}
	return toAttachmentResponse(att), nil
}

// Delete elimina el adjunto; false si ausente o ajeno.
func (uc *AttachmentUseCase) Delete(id, ownerID string) (bool, error) {
	return uc.attachments.Delete(id, ownerID)
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AttachmentResponse{
		ID:         a.ID,
		OwnerID:    a.OwnerID,
		TaskID:     a.TaskID,
		Filename:   a.Filename,
		MimeType:   a.MimeType,
		DataBase64: a.DataBase64,
		Size:       strconv.FormatInt(a.Size, 10),
		CreatedAt:  a.CreatedAt,
	}
}
