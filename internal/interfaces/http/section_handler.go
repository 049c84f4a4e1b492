package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
)

// SectionHandler maneja las secciones configurables (lectura para cualquier
// autenticado; escritura solo admin o employee).
type SectionHandler struct {
	uc *usecase.SectionUseCase
}

// NewSectionHandler construye el handler.
func NewSectionHandler(uc *usecase.SectionUseCase) *SectionHandler {
	return &SectionHandler{uc: uc}
}

// List godoc
// @Summary      Listar secciones del propietario (ordenadas por orderIndex)
// @Tags         sections
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SectionResponse
// @Router       /api/sections [get]
func (h *SectionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في استرجاع الأقسام"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sección
// @Tags         sections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSectionRequest  true  "Datos de la sección"
// @Success      201   {object}  dto.SectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sections [post]
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectionRequest
	if err := c.BodyParser(&in); err != nil || in.Name == "" || in.BaseType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في إنشاء القسم"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في إنشاء القسم"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sección
// @Tags         sections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sección"
// @Param        body  body  dto.UpdateSectionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sections/{id} [put]
func (h *SectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث القسم"})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث القسم"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "القسم غير موجود"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sección
// @Tags         sections
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sección"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sections/{id} [delete]
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Params("id"), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في حذف القسم"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "القسم غير موجود"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
