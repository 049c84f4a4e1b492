package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
)

// SettingsHandler maneja la configuración por propietario y el PIN (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración del propietario
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "خطأ في استرجاع الإعدادات"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración (upsert con defaults en el primer uso)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث الإعدادات"})
	}
	out, err := h.uc.Update(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تحديث الإعدادات"})
	}
	return c.JSON(out)
}

// VerifyPin godoc
// @Summary      Verificar el PIN del área protegida
// @Tags         pin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PinRequest  true  "PIN de 4 dígitos"
// @Success      200   {object}  dto.PinVerifyResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/pin/verify [post]
func (h *SettingsHandler) VerifyPin(c *fiber.Ctx) error {
	var in dto.PinRequest
	if err := c.BodyParser(&in); err != nil || len(in.Pin) != 4 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في التحقق من رقم الحماية"})
	}
	ok, err := h.uc.VerifyPin(in.Pin, GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في التحقق من رقم الحماية"})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "رقم الحماية غير صحيح"})
	}
	return c.JSON(dto.PinVerifyResponse{Success: true, Timestamp: time.Now().UnixMilli()})
}

// SetPin godoc
// @Summary      Configurar el PIN del área protegida
// @Tags         pin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PinRequest  true  "PIN de 4 dígitos"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pin/set [post]
func (h *SettingsHandler) SetPin(c *fiber.Ctx) error {
	var in dto.PinRequest
	if err := c.BodyParser(&in); err != nil || len(in.Pin) != 4 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تعيين رقم الحماية"})
	}
	if err := h.uc.SetPin(GetUserID(c), in.Pin); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "خطأ في تعيين رقم الحماية"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
