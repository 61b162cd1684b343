package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/portal"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/pkg/validate"
)

// PortalHandler fachada /my del portal de empleados (protegido).
// Un acceso a un registro ajeno o inexistente no revela nada: redirige en
// silencio a la página de inicio del portal.
type PortalHandler struct {
	uc *portal.PortalUseCase
}

// NewPortalHandler construye el handler.
func NewPortalHandler(uc *portal.PortalUseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// redirectHome respuesta ante accesos denegados del portal: 302 a /my.
func (h *PortalHandler) redirectHome(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
		return c.Redirect("/my", fiber.StatusFound)
	}
	return respondError(c, err)
}

// Home godoc
// @Summary      Contadores de inicio del portal
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PortalHomeResponse
// @Router       /my [get]
func (h *PortalHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home(GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAssets godoc
// @Summary      Mis activos (asignados o en uso)
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Param        sortby  query  string  false  "Orden: date | name | category"  default(date)
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Success      200     {object}  dto.AssetListResponse
// @Router       /my/assets [get]
func (h *PortalHandler) ListAssets(c *fiber.Ctx) error {
	var in dto.PortalAssetListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListAssets(GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetAsset godoc
// @Summary      Detalle de uno de mis activos (o con access_token)
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID del activo"
// @Param        access_token  query  string  false  "Token de acceso al registro"
// @Success      200  {object}  dto.AssetResponse
// @Failure      302  "Redirección a /my si no hay acceso"
// @Router       /my/assets/{id} [get]
func (h *PortalHandler) GetAsset(c *fiber.Ctx) error {
	out, err := h.uc.GetAsset(GetEmployeeID(c), c.Params("id"), c.Query("access_token"))
	if err != nil {
		return h.redirectHome(c, err)
	}
	return c.JSON(out)
}

// ListRequests godoc
// @Summary      Mis solicitudes
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Param        sortby    query  string  false  "Orden: date | name | state"  default(date)
// @Param        filterby  query  string  false  "Filtro: all | submitted | in_progress | done"  default(all)
// @Param        limit     query  int     false  "Límite"
// @Param        offset    query  int     false  "Offset"
// @Success      200       {object}  dto.AssetRequestListResponse
// @Router       /my/requests [get]
func (h *PortalHandler) ListRequests(c *fiber.Ctx) error {
	var in dto.PortalRequestListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListRequests(GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRequest godoc
// @Summary      Detalle de una de mis solicitudes con su actividad
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID de la solicitud"
// @Param        access_token  query  string  false  "Token de acceso al registro"
// @Success      200  {object}  dto.PortalRequestDetail
// @Failure      302  "Redirección a /my si no hay acceso"
// @Router       /my/requests/{id} [get]
func (h *PortalHandler) GetRequest(c *fiber.Ctx) error {
	out, err := h.uc.GetRequest(GetEmployeeID(c), c.Params("id"), c.Query("access_token"))
	if err != nil {
		return h.redirectHome(c, err)
	}
	return c.JSON(out)
}

// NewRequestForm godoc
// @Summary      Datos de apoyo para el formulario de nueva solicitud
// @Tags         portal
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PortalNewRequestForm
// @Router       /my/requests/new [get]
func (h *PortalHandler) NewRequestForm(c *fiber.Ctx) error {
	out, err := h.uc.NewRequestForm(GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRequest godoc
// @Summary      Crear solicitud desde el portal (se envía de inmediato)
// @Tags         portal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.AssetRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /my/requests [post]
func (h *PortalHandler) CreateRequest(c *fiber.Ctx) error {
	var in dto.CreateAssetRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreateRequest(c.Context(), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddComment godoc
// @Summary      Comentar una de mis solicitudes
// @Tags         portal
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.PortalCommentRequest  true  "Comentario"
// @Success      204
// @Failure      302  "Redirección a /my si no hay acceso"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /my/requests/{id}/comment [post]
func (h *PortalHandler) AddComment(c *fiber.Ctx) error {
	var in dto.PortalCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddComment(GetEmployeeID(c), c.Params("id"), in); err != nil {
		return h.redirectHome(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
