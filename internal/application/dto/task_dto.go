package dto

import "time"

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	TaskName    string `json:"taskName" validate:"required,min=1"`
	TaskType    string `json:"taskType"`
	LastInquiry string `json:"lastInquiry"`
	TaskStatus  string `json:"taskStatus"`
	DueDate     string `json:"dueDate"`
}

// UpdateTaskRequest parche de una tarea.
type UpdateTaskRequest struct {
	TaskName    *string `json:"taskName"`
	TaskType    *string `json:"taskType"`
	LastInquiry *string `json:"lastInquiry"`
	TaskStatus  *string `json:"taskStatus"`
	DueDate     *string `json:"dueDate"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	TaskName    string    `json:"taskName"`
	TaskType    string    `json:"taskType"`
	LastInquiry string    `json:"lastInquiry"`
	TaskStatus  string    `json:"taskStatus"`
	DueDate     string    `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskNoteRequest entrada para crear una nota de tarea.
type CreateTaskNoteRequest struct {
	TaskID  string `json:"taskId" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateTaskNoteRequest parche de una nota de tarea.
type UpdateTaskNoteRequest struct {
	Content *string `json:"content"`
}

// TaskNoteResponse salida de una nota de tarea.
type TaskNoteResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	TaskID    string    `json:"taskId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateAttachmentRequest entrada para adjuntar una imagen a una tarea.
// Size llega como string por compatibilidad con el cliente; el servidor lo
// recalcula a partir del payload base64 real.
type CreateAttachmentRequest struct {
	TaskID     string `json:"taskId" validate:"required"`
	Filename   string `json:"filename" validate:"required"`
	MimeType   string `json:"mimeType" validate:"required"`
	DataBase64 string `json:"dataBase64" validate:"required"`
	Size       string `json:"size"`
}

// AttachmentResponse salida de un adjunto. Size viaja como string
// (convención del cliente web).
type AttachmentResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	TaskID     string    `json:"taskId"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	DataBase64 string    `json:"dataBase64"`
	Size       string    `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
}
