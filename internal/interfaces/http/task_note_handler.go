package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
)

// TaskNoteHandler maneja las notas de tarea (protegido).
type TaskNoteHandler struct {
	uc *usecase.TaskNoteUseCase
}

// NewTaskNoteHandler construye el handler.
func NewTaskNoteHandler(uc *usecase.TaskNoteUseCase) *TaskNoteHandler {
	return &TaskNoteHandler{uc: uc}
}

// ListByTask godoc
// @Summary      Listar notas de una tarea
// @Tags         task-notes
// @Security     Bearer
// @Produce      json
// @Param        taskId  path  string  true  "ID de la tarea"
// @Success      200  {array}  dto.TaskNoteResponse
// @Router       /api/tasks/{taskId}/notes [get]
func (h *TaskNoteHandler) ListByTask(c *fiber.Ctx) error {
	out, err := h.uc.ListByTask(c.Params("taskId"), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في استرجاع ملاحظات المهمة"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear nota de tarea (la tarea padre debe pertenecer al caller)
// @Tags         task-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskNoteRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.TaskNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/task-notes [post]
func (h *TaskNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskNoteRequest
	if err := c.BodyParser(&in); err != nil || in.TaskID == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في إنشاء ملاحظة المهمة"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في إنشاء ملاحظة المهمة"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar nota de tarea
// @Tags         task-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la nota"
// @Param        body  body  dto.UpdateTaskNoteRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaskNoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/task-notes/{id} [put]
func (h *TaskNoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث ملاحظة المهمة"})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث ملاحظة المهمة"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "ملاحظة المهمة غير موجودة"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar nota de tarea
// @Tags         task-notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/task-notes/{id} [delete]
func (h *TaskNoteHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في حذف ملاحظة المهمة"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "ملاحظة المهمة غير موجودة"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
