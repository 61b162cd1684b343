package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/pkg/validate"
)

// DiseaseHandler maneja las peticiones HTTP para el catálogo de enfermedades (protegido).
type DiseaseHandler struct {
	uc *usecase.DiseaseUseCase
}

// NewDiseaseHandler construye el handler.
func NewDiseaseHandler(uc *usecase.DiseaseUseCase) *DiseaseHandler {
	return &DiseaseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear enfermedad (código único)
// @Tags         diseases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiseaseRequest  true  "Datos de la enfermedad"
// @Success      201   {object}  dto.DiseaseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/diseases [post]
func (h *DiseaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDiseaseRequest
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
// @Summary      Obtener enfermedad por ID
// @Tags         diseases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la enfermedad"
// @Success      200  {object}  dto.DiseaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/diseases/{id} [get]
func (h *DiseaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "enfermedad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar enfermedades
// @Tags         diseases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DiseaseListResponse
// @Router       /api/diseases [get]
func (h *DiseaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar enfermedad
// @Tags         diseases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la enfermedad"
// @Param        body  body  dto.UpdateDiseaseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DiseaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/diseases/{id} [patch]
func (h *DiseaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDiseaseRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "enfermedad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar enfermedad
// @Tags         diseases
// @Security     Bearer
// @Param        id  path  string  true  "ID de la enfermedad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/diseases/{id} [delete]
func (h *DiseaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
