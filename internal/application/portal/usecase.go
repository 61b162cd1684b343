package portal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/requests"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
	"github.com/jhoicas/Activos-api/pkg/portaltoken"
)

// visibleAssetStates estados que cuentan como "mis activos" en el portal.
var visibleAssetStates = []string{entity.AssetStateAssigned, entity.AssetStateInUse}

// requestFilters mapa de filtro del portal a estado del workflow. "all" no filtra.
var requestFilters = map[string]workflow.State{
	"all":         "",
	"submitted":   workflow.StateSubmitted,
	"in_progress": workflow.StateInProgress,
	"done":        workflow.StateDone,
}

// PortalUseCase fachada de autoservicio para empleados: sus activos, sus
// solicitudes y comentarios sobre ellas. Toda lectura se recorta al empleado
// autenticado; un token de acceso firmado permite compartir un registro
// puntual sin sesión de dueño.
type PortalUseCase struct {
	assetRepo    repository.AssetRepository
	requestRepo  repository.AssetRequestRepository
	auditRepo    repository.AuditRepository
	categoryRepo repository.AssetCategoryRepository
	requests     *requests.RequestUseCase
	tokenSecret  string
	pageSize     int
}

// NewPortalUseCase construye la fachada del portal.
func NewPortalUseCase(
	assetRepo repository.AssetRepository,
	requestRepo repository.AssetRequestRepository,
	auditRepo repository.AuditRepository,
	categoryRepo repository.AssetCategoryRepository,
	requestUC *requests.RequestUseCase,
	tokenSecret string,
	pageSize int,
) *PortalUseCase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &PortalUseCase{
		assetRepo:    assetRepo,
		requestRepo:  requestRepo,
		auditRepo:    auditRepo,
		categoryRepo: categoryRepo,
		requests:     requestUC,
		tokenSecret:  tokenSecret,
		pageSize:     pageSize,
	}
}

// Home contadores de la página de inicio: activos en mano y solicitudes propias.
func (uc *PortalUseCase) Home(employeeID string) (*dto.PortalHomeResponse, error) {
	assetCount, err := uc.assetRepo.CountByEmployee(employeeID, visibleAssetStates)
	if err != nil {
		return nil, err
	}
	requestCount, err := uc.requestRepo.CountByRequester(employeeID, "")
	if err != nil {
		return nil, err
	}
	return &dto.PortalHomeResponse{
		AssetCount:   assetCount,
		RequestCount: requestCount,
	}, nil
}

// ListAssets activos asignados o en uso del empleado, ordenables por fecha
// de asignación (por defecto, descendente), nombre o categoría.
func (uc *PortalUseCase) ListAssets(employeeID string, in dto.PortalAssetListRequest) (*dto.AssetListResponse, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = repository.AssetSortDate
	}
	in.Page.DefaultPage()
	if in.Page.Limit > uc.pageSize {
		in.Page.Limit = uc.pageSize
	}
	list, err := uc.assetRepo.ListByEmployee(employeeID, visibleAssetStates, sortBy, in.Page.Limit, in.Page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.assetRepo.CountByEmployee(employeeID, visibleAssetStates)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, uc.toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Page.Limit, Offset: in.Page.Offset, Total: total},
	}, nil
}

// ListRequests solicitudes del empleado con filtro por estado y ordenamiento.
func (uc *PortalUseCase) ListRequests(employeeID string, in dto.PortalRequestListRequest) (*dto.AssetRequestListResponse, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = repository.RequestSortDate
	}
	filter := in.FilterBy
	if filter == "" {
		filter = "all"
	}
	state, ok := requestFilters[filter]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	in.Page.DefaultPage()
	if in.Page.Limit > uc.pageSize {
		in.Page.Limit = uc.pageSize
	}
	list, err := uc.requestRepo.ListByRequester(employeeID, state, sortBy, in.Page.Limit, in.Page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.requestRepo.CountByRequester(employeeID, state)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRequestResponse(r))
	}
	return &dto.AssetRequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Page.Limit, Offset: in.Page.Offset, Total: total},
	}, nil
}

// GetAsset detalle de un activo del portal. Acceso: dueño actual o portador
// de un token válido para ese registro; cualquier otro caso es ErrForbidden
// y el handler lo convierte en redirección silenciosa.
func (uc *PortalUseCase) GetAsset(employeeID, assetID, token string) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrForbidden
	}
	if asset.EmployeeID != employeeID {
		if err := portaltoken.Verify(uc.tokenSecret, token, portaltoken.RecordAsset, assetID); err != nil {
			return nil, domain.ErrForbidden
		}
	}
	resp := uc.toAssetResponse(asset)
	return &resp, nil
}

// GetRequest detalle de una solicitud con su token de acceso y el hilo de
// actividad. Mismo control de acceso que GetAsset.
func (uc *PortalUseCase) GetRequest(employeeID, requestID, token string) (*dto.PortalRequestDetail, error) {
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrForbidden
	}
	if request.RequesterID != employeeID {
		if err := portaltoken.Verify(uc.tokenSecret, token, portaltoken.RecordRequest, requestID); err != nil {
			return nil, domain.ErrForbidden
		}
	}

	accessToken, err := portaltoken.Sign(uc.tokenSecret, portaltoken.RecordRequest, requestID)
	if err != nil {
		return nil, err
	}
	entries, err := uc.auditRepo.ListByRecord(entity.AuditRecordRequest, requestID, 100, 0)
	if err != nil {
		return nil, err
	}
	messages := make([]dto.AuditMessage, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, dto.AuditMessage{
			Body:      e.Body,
			AuthorID:  e.AuthorID,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.PortalRequestDetail{
		Request:     toRequestResponse(request),
		AccessToken: accessToken,
		Messages:    messages,
	}, nil
}

// NewRequestForm datos de apoyo para el formulario: categorías activas y los
// activos que el empleado tiene en mano (candidatos a reparación o reemplazo).
func (uc *PortalUseCase) NewRequestForm(employeeID string) (*dto.PortalNewRequestForm, error) {
	categories, err := uc.categoryRepo.List(100, 0)
	if err != nil {
		return nil, err
	}
	catItems := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		if !c.Active {
			continue
		}
		var parent *entity.AssetCategory
		if c.ParentID != "" {
			parent, _ = uc.categoryRepo.GetByID(c.ParentID)
		}
		catItems = append(catItems, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			DisplayName: c.DisplayNameWith(parent),
			Code:        c.Code,
			ParentID:    c.ParentID,
			Active:      c.Active,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}

	ownAssets, err := uc.assetRepo.ListByEmployee(employeeID, visibleAssetStates, repository.AssetSortDate, 100, 0)
	if err != nil {
		return nil, err
	}
	assetItems := make([]dto.AssetResponse, 0, len(ownAssets))
	for _, a := range ownAssets {
		assetItems = append(assetItems, uc.toAssetResponse(a))
	}
	return &dto.PortalNewRequestForm{
		Categories: catItems,
		Assets:     assetItems,
	}, nil
}

// CreateRequest alta desde el portal. La solicitud se crea y se envía en la
// misma transacción: nunca queda un borrador visible para el staff.
func (uc *PortalUseCase) CreateRequest(ctx context.Context, employeeID string, in dto.CreateAssetRequestRequest) (*dto.AssetRequestResponse, error) {
	return uc.requests.CreateAndSubmit(ctx, employeeID, in)
}

// AddComment agrega un comentario del empleado al hilo de su solicitud.
// Comentario vacío o solo espacios se descarta con error.
func (uc *PortalUseCase) AddComment(employeeID, requestID string, in dto.PortalCommentRequest) error {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return domain.ErrInvalidInput
	}
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if request == nil || request.RequesterID != employeeID {
		return domain.ErrForbidden
	}
	return uc.auditRepo.Append(&entity.AuditEntry{
		ID:         uuid.New().String(),
		RecordType: entity.AuditRecordRequest,
		RecordID:   requestID,
		Body:       message,
		AuthorID:   employeeID,
		CreatedAt:  time.Now(),
	})
}

func (uc *PortalUseCase) toAssetResponse(a *entity.Asset) dto.AssetResponse {
	requestCount, err := uc.requestRepo.CountByAsset(a.ID)
	if err != nil {
		requestCount = 0
	}
	return dto.AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		Code:           a.Code,
		QRCode:         a.QRCode(),
		CategoryID:     a.CategoryID,
		Description:    a.Description,
		SerialNumber:   a.SerialNumber,
		Manufacturer:   a.Manufacturer,
		Model:          a.Model,
		Specifications: a.Specifications,
		PurchaseDate:   a.PurchaseDate,
		PurchasePrice:  a.PurchasePrice,
		WarrantyEnd:    a.WarrantyEnd,
		State:          a.State,
		EmployeeID:     a.EmployeeID,
		AssignmentDate: a.AssignmentDate,
		RequestCount:   requestCount,
		Active:         a.Active,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toRequestResponse(r *entity.AssetRequest) dto.AssetRequestResponse {
	return dto.AssetRequestResponse{
		ID:             r.ID,
		Number:         r.Number,
		RequestType:    r.RequestType,
		RequesterID:    r.RequesterID,
		AssetID:        r.AssetID,
		CategoryID:     r.CategoryID,
		Description:    r.Description,
		Justification:  r.Justification,
		State:          string(r.State),
		Priority:       r.Priority,
		AssignedToID:   r.AssignedToID,
		RequestDate:    r.RequestDate,
		ExpectedDate:   r.ExpectedDate,
		CompletionDate: r.CompletionDate,
		Comments:       r.Comments,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
