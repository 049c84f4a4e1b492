package entity

import "time"

// TaskStatusInProgress estado inicial de una tarea ("جاري العمل").
const TaskStatusInProgress = "جاري العمل"

// Task representa una tarea de trabajo. Al eliminarse arrastra sus
// TaskNotes y Attachments.
type Task struct {
	ID          string
	OwnerID     string
	TaskName    string
	TaskType    string
	LastInquiry string
	TaskStatus  string
	DueDate     string // fecha libre tal como la captura el cliente (ej. "2025-09-20")
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskNote nota asociada a una Task. Misma precondición de propiedad del
// padre que Note.
type TaskNote struct {
	ID        string
	OwnerID   string
	TaskID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment imagen adjunta a una Task, almacenada como data URL base64.
// Las reglas de tipo/tamaño/cantidad las aplica la capa de rutas.
type Attachment struct {
	ID         string
	OwnerID    string
	TaskID     string
	Filename   string
	MimeType   string
	DataBase64 string
	Size       int64 // bytes decodificados; en el API viaja como string
	CreatedAt  time.Time
}
