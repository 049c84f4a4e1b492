package http

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
)

// MaxAttachmentBytes tamaño máximo decodificado de un adjunto (2 MiB).
const MaxAttachmentBytes = 2 * 1024 * 1024

// dataURLPattern solo imágenes; cualquier otro tipo se rechaza antes de
// tocar el almacenamiento.
var dataURLPattern = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp|gif);base64,`)

// AttachmentHandler maneja los adjuntos de tarea (protegido). Las reglas de
// tipo y tamaño se aplican aquí, en la capa de rutas, igual que el tope de
// cantidad se aplica en el caso de uso.
type AttachmentHandler struct {
	uc *usecase.AttachmentUseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *usecase.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// ListByTask godoc
// @Summary      Listar adjuntos de una tarea
// @Tags         attachments
// @Security     Bearer
// @Produce      json
// @Param        taskId  path  string  true  "ID de la tarea"
// @Success      200  {array}  dto.AttachmentResponse
// @Router       /api/tasks/{taskId}/attachments [get]
func (h *AttachmentHandler) ListByTask(c *fiber.Ctx) error {
	out, err := h.uc.ListByTask(c.Params("taskId"), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في استرجاع المرفقات"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Adjuntar imagen a una tarea
// @Tags         attachments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAttachmentRequest  true  "Adjunto (data URL base64)"
// @Success      201   {object}  dto.AttachmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attachments [post]
func (h *AttachmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttachmentRequest
	if err := c.BodyParser(&in); err != nil || in.TaskID == "" || in.Filename == "" || in.DataBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في رفع المرفق"})
	}

	if !dataURLPattern.MatchString(in.DataBase64) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "نوع الملف غير مدعوم - الصور فقط"})
	}

	// El tamaño declarado por el cliente se ignora: se recalcula a partir
	// del payload base64 real.
	_, payload, _ := strings.Cut(in.DataBase64, ",")
	size := int64(len(payload)) * 3 / 4
	if size > MaxAttachmentBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "حجم الملف يتجاوز الحد المسموح (2MB)"})
	}

	out, err := h.uc.Create(GetUserID(c), in, size)
	if err != nil {
		if errors.Is(err, domain.ErrAttachmentLimit) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في رفع المرفق"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar adjunto
// @Tags         attachments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del adjunto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في حذف المرفق"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "المرفق غير موجود"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
