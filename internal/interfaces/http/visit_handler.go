package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/pkg/validate"
)

// VisitHandler maneja las peticiones HTTP para visitas (protegido).
type VisitHandler struct {
	uc *usecase.VisitUseCase
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *usecase.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar visita (el número lo asigna la secuencia)
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener visita por ID
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar visitas
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.VisitListResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar visita (una visita cerrada queda congelada)
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la visita"
// @Param        body  body  dto.UpdateVisitRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VisitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [patch]
func (h *VisitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar visita como realizada
// @Tags         visits
// @Security     Bearer
// @Param        id  path  string  true  "ID de la visita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/complete [post]
func (h *VisitHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar visita
// @Tags         visits
// @Security     Bearer
// @Param        id  path  string  true  "ID de la visita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/cancel [post]
func (h *VisitHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
