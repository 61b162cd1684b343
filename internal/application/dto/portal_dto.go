package dto

// PortalHomeResponse contadores de la página de inicio del portal.
type PortalHomeResponse struct {
	AssetCount   int `json:"asset_count"`   // activos asignados o en uso
	RequestCount int `json:"request_count"` // solicitudes propias
}

// PortalAssetListRequest parámetros del listado de activos del portal.
type PortalAssetListRequest struct {
	SortBy string `query:"sortby" validate:"omitempty,oneof=date name category"`
	Page   PageRequest
}

// PortalRequestListRequest parámetros del listado de solicitudes del portal.
type PortalRequestListRequest struct {
	SortBy   string `query:"sortby" validate:"omitempty,oneof=date name state"`
	FilterBy string `query:"filterby" validate:"omitempty,oneof=all submitted in_progress done"`
	Page     PageRequest
}

// PortalNewRequestForm datos de apoyo para el formulario de nueva solicitud:
// categorías disponibles y activos asignados al empleado.
type PortalNewRequestForm struct {
	Categories []CategoryResponse `json:"categories"`
	Assets     []AssetResponse    `json:"assets"`
}

// PortalRequestDetail solicitud con su token de acceso y actividad.
type PortalRequestDetail struct {
	Request     AssetRequestResponse `json:"request"`
	AccessToken string               `json:"access_token"`
	Messages    []AuditMessage       `json:"messages"`
}

// PortalCommentRequest comentario del empleado sobre su solicitud.
type PortalCommentRequest struct {
	Message string `json:"message" validate:"required"`
}

// AuditMessage entrada del log de actividad visible en el portal.
type AuditMessage struct {
	Body      string `json:"body"`
	AuthorID  string `json:"author_id,omitempty"`
	CreatedAt string `json:"created_at"`
}
