package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
)

// ExportHandler sirve los reportes PDF de pedidos y tareas (protegido).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Orders godoc
// @Summary      Exportar pedidos del propietario como PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/orders/export/pdf [get]
func (h *ExportHandler) Orders(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportOrders(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في تصدير الطلبات"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.pdf"`)
	return c.Send(pdfBytes)
}

// Tasks godoc
// @Summary      Exportar tareas del propietario como PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/tasks/export/pdf [get]
func (h *ExportHandler) Tasks(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportTasks(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في تصدير المهام"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tasks.pdf"`)
	return c.Send(pdfBytes)
}
