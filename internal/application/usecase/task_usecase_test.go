package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tareas
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskUpdate_ParchePreservaCamposNoEnviados(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTaskUseCase(store.Tasks(), store)

	created, err := uc.Create(ownerA, dto.CreateTaskRequest{
		TaskName: "فحص المحول", TaskType: "صيانة", DueDate: "2025-01-15",
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, ownerA, dto.UpdateTaskRequest{TaskStatus: strPtr("منجزة")})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "منجزة", out.TaskStatus)
	assert.Equal(t, "فحص المحول", out.TaskName)
	assert.Equal(t, "صيانة", out.TaskType)
	assert.Equal(t, "2025-01-15", out.DueDate)
}

func TestTaskDelete_CascadaEliminaNotasYAdjuntos(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	noteUC := usecase.NewTaskNoteUseCase(store.TaskNotes(), store.Tasks())
	attUC := usecase.NewAttachmentUseCase(store.Attachments(), store.Tasks())

	task, err := taskUC.Create(ownerA, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.NoError(t, err)
	_, err = noteUC.Create(ownerA, dto.CreateTaskNoteRequest{TaskID: task.ID, Content: "nota"})
	require.NoError(t, err)
	_, err = attUC.Create(ownerA, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "foto.png", MimeType: "image/png", DataBase64: "data:image/png;base64,aGVsbG8=",
	}, 5)
	require.NoError(t, err)

	ok, err := taskUC.Delete(context.Background(), task.ID, ownerA)
	require.NoError(t, err)
	require.True(t, ok)

	notes, err := noteUC.ListByTask(task.ID, ownerA)
	require.NoError(t, err)
	assert.Empty(t, notes)
	atts, err := attUC.ListByTask(task.ID, ownerA)
	require.NoError(t, err)
	assert.Empty(t, atts, "los adjuntos deben caer con la tarea")
}

func TestTaskDelete_AjenoDevuelveFalse(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTaskUseCase(store.Tasks(), store)

	task, err := uc.Create(ownerA, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.NoError(t, err)

	ok, err := uc.Delete(context.Background(), task.ID, ownerB)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := uc.Get(task.ID, ownerA)
	require.NoError(t, err)
	assert.NotNil(t, got, "la tarea del propietario legítimo sigue ahí")
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjuntos
// ──────────────────────────────────────────────────────────────────────────────

func TestAttachmentCreate_PadreAjenoFalla(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	attUC := usecase.NewAttachmentUseCase(store.Attachments(), store.Tasks())

	task, err := taskUC.Create(ownerB, dto.CreateTaskRequest{TaskName: "de B"})
	require.NoError(t, err)

	_, err = attUC.Create(ownerA, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "x.png", MimeType: "image/png", DataBase64: "data:image/png;base64,eA==",
	}, 1)
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestAttachmentCreate_TopeDeDiezPorTarea(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	attUC := usecase.NewAttachmentUseCase(store.Attachments(), store.Tasks())

	task, err := taskUC.Create(ownerA, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.NoError(t, err)

	for i := 0; i < usecase.MaxAttachmentsPerTask; i++ {
		_, err := attUC.Create(ownerA, dto.CreateAttachmentRequest{
			TaskID:     task.ID,
			Filename:   fmt.Sprintf("img-%d.png", i),
			MimeType:   "image/png",
			DataBase64: "data:image/png;base64,eA==",
		}, 1)
		require.NoError(t, err, "adjunto %d dentro del tope debe aceptarse", i)
	}

	_, err = attUC.Create(ownerA, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "once.png", MimeType: "image/png", DataBase64: "data:image/png;base64,eA==",
	}, 1)
	assert.ErrorIs(t, err, domain.ErrAttachmentLimit)

	atts, err := attUC.ListByTask(task.ID, ownerA)
	require.NoError(t, err)
	assert.Len(t, atts, usecase.MaxAttachmentsPerTask)
}

func TestAttachmentCreate_SizeSeSerializaComoCadena(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	attUC := usecase.NewAttachmentUseCase(store.Attachments(), store.Tasks())

	task, err := taskUC.Create(ownerA, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.NoError(t, err)

	// El size declarado por el cliente se ignora; manda el recalculado.
	out, err := attUC.Create(ownerA, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "x.png", MimeType: "image/png",
		DataBase64: "data:image/png;base64,aGVsbG8=", Size: "999999",
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, "5", out.Size)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas de tarea
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskNoteCreate_PadreAjenoFalla(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	noteUC := usecase.NewTaskNoteUseCase(store.TaskNotes(), store.Tasks())

	task, err := taskUC.Create(ownerB, dto.CreateTaskRequest{TaskName: "de B"})
	require.NoError(t, err)

	_, err = noteUC.Create(ownerA, dto.CreateTaskNoteRequest{TaskID: task.ID, Content: "intrusa"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestTaskNoteDelete_AjenoDevuelveFalse(t *testing.T) {
	store := memory.NewStore()
	taskUC := usecase.NewTaskUseCase(store.Tasks(), store)
	noteUC := usecase.NewTaskNoteUseCase(store.TaskNotes(), store.Tasks())

	task, err := taskUC.Create(ownerA, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.NoError(t, err)
	note, err := noteUC.Create(ownerA, dto.CreateTaskNoteRequest{TaskID: task.ID, Content: "nota"})
	require.NoError(t, err)

	ok, err := noteUC.Delete(note.ID, ownerB)
	require.NoError(t, err)
	assert.False(t, ok)
}
