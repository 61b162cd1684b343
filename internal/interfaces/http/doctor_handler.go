package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/pkg/validate"
)

// DoctorHandler maneja las peticiones HTTP para médicos (protegido).
type DoctorHandler struct {
	uc        *usecase.DoctorUseCase
	patientUC *usecase.PatientUseCase
	visitUC   *usecase.VisitUseCase
}

// NewDoctorHandler construye el handler.
func NewDoctorHandler(uc *usecase.DoctorUseCase, patientUC *usecase.PatientUseCase, visitUC *usecase.VisitUseCase) *DoctorHandler {
	return &DoctorHandler{uc: uc, patientUC: patientUC, visitUC: visitUC}
}

// Create godoc
// @Summary      Crear médico (un interno exige mentor no-interno)
// @Tags         doctors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDoctorRequest  true  "Datos del médico"
// @Success      201   {object}  dto.DoctorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/doctors [post]
func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDoctorRequest
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
// @Summary      Obtener médico por ID
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del médico"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar médicos
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DoctorListResponse
// @Router       /api/doctors [get]
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar médico (revalida la regla interno/mentor)
// @Tags         doctors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del médico"
// @Param        body  body  dto.UpdateDoctorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DoctorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [patch]
func (h *DoctorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDoctorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar médico sin pacientes ni internos a cargo
// @Tags         doctors
// @Security     Bearer
// @Param        id  path  string  true  "ID del médico"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [delete]
func (h *DoctorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPatients godoc
// @Summary      Pacientes de un médico
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del médico"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.PatientListResponse
// @Router       /api/doctors/{id}/patients [get]
func (h *DoctorHandler) ListPatients(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.patientUC.ListByDoctor(c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListVisits godoc
// @Summary      Agenda de visitas de un médico
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del médico"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.VisitListResponse
// @Router       /api/doctors/{id}/visits [get]
func (h *DoctorHandler) ListVisits(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.visitUC.ListByDoctor(c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
