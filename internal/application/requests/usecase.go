package requests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

// RequestUseCase ciclo de vida de solicitudes de activos: alta, edición y la
// máquina de estados (submit, start, approve, complete, reject, cancel).
// Cada transición valida el estado actual contra la tabla del workflow y deja
// su notificación en el log de actividad, todo en una transacción.
type RequestUseCase struct {
	txRunner     TxRunner
	requestRepo  repository.AssetRequestRepository
	assetRepo    repository.AssetRepository
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.AssetRequestRepository,
	assetRepo repository.AssetRepository,
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
) *RequestUseCase {
	return &RequestUseCase{
		txRunner:     txRunner,
		requestRepo:  requestRepo,
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// checkAssetRule valida la restricción central: repair/replacement exigen
// activo; new lo deja vacío. Se aplica en cada create y update, nunca solo
// al enviar.
func (uc *RequestUseCase) checkAssetRule(requestType, assetID string) (string, error) {
	switch requestType {
	case entity.RequestTypeNew:
		// Para activos nuevos el activo referenciado se limpia
		return "", nil
	case entity.RequestTypeRepair, entity.RequestTypeReplacement:
		if assetID == "" {
			return "", fmt.Errorf("%w: las solicitudes de reparación o reemplazo deben indicar un activo", domain.ErrValidation)
		}
		asset, err := uc.assetRepo.GetByID(assetID)
		if err != nil {
			return "", err
		}
		if asset == nil {
			return "", fmt.Errorf("%w: el activo indicado no existe", domain.ErrValidation)
		}
		return assetID, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// build arma la entidad desde el DTO de alta, sin número todavía.
func (uc *RequestUseCase) build(requesterID string, in dto.CreateAssetRequestRequest) (*entity.AssetRequest, error) {
	assetID, err := uc.checkAssetRule(in.RequestType, in.AssetID)
	if err != nil {
		return nil, err
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := time.Now()
	return &entity.AssetRequest{
		ID:            uuid.New().String(),
		Number:        entity.RequestNumberPlaceholder,
		RequestType:   in.RequestType,
		RequesterID:   requesterID,
		AssetID:       assetID,
		CategoryID:    in.CategoryID,
		Description:   in.Description,
		Justification: in.Justification,
		State:         workflow.StateDraft,
		Priority:      priority,
		RequestDate:   now,
		ExpectedDate:  in.ExpectedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Create da de alta una solicitud en borrador. El número sale de la secuencia
// it.asset.request dentro de la misma transacción que el insert.
func (uc *RequestUseCase) Create(ctx context.Context, requesterID string, in dto.CreateAssetRequestRequest) (*dto.AssetRequestResponse, error) {
	request, err := uc.build(requesterID, in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.RunRequest(ctx, func(
		reqRepo repository.AssetRequestRepository,
		_ repository.AuditRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.NextByCode(repository.SeqRequest)
		if err != nil {
			return err
		}
		request.Number = fmt.Sprintf("REQ-%05d", seq)
		return reqRepo.Create(request)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(request), nil
}

// CreateAndSubmit alta + envío en una sola transacción (camino del portal:
// una solicitud del portal jamás queda visible en borrador).
func (uc *RequestUseCase) CreateAndSubmit(ctx context.Context, requesterID string, in dto.CreateAssetRequestRequest) (*dto.AssetRequestResponse, error) {
	request, err := uc.build(requesterID, in)
	if err != nil {
		return nil, err
	}
	newState, err := workflow.Apply(request.State, workflow.ActionSubmit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	recipients := uc.staffEmployeeIDs()
	requesterName := uc.employeeName(requesterID)

	err = uc.txRunner.RunRequest(ctx, func(
		reqRepo repository.AssetRequestRepository,
		auditRepo repository.AuditRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.NextByCode(repository.SeqRequest)
		if err != nil {
			return err
		}
		request.Number = fmt.Sprintf("REQ-%05d", seq)
		request.State = newState
		if err := reqRepo.Create(request); err != nil {
			return err
		}
		return auditRepo.Append(&entity.AuditEntry{
			ID:           uuid.New().String(),
			RecordType:   entity.AuditRecordRequest,
			RecordID:     request.ID,
			Body:         fmt.Sprintf("Nueva solicitud de %s", requesterName),
			AuthorID:     requesterID,
			RecipientIDs: recipients,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return toResponse(request), nil
}

// GetByID obtiene una solicitud por ID.
func (uc *RequestUseCase) GetByID(id string) (*dto.AssetRequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return toResponse(request), nil
}

// Update edita una solicitud revalidando la restricción de activo en cada
// escritura. Cambiar el tipo a new limpia el activo referenciado.
func (uc *RequestUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequestRequest) (*dto.AssetRequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}

	requestType := request.RequestType
	if in.RequestType != nil {
		requestType = *in.RequestType
	}
	assetID := request.AssetID
	if in.AssetID != nil {
		assetID = *in.AssetID
	}
	checkedAssetID, err := uc.checkAssetRule(requestType, assetID)
	if err != nil {
		return nil, err
	}
	request.RequestType = requestType
	request.AssetID = checkedAssetID

	if in.CategoryID != nil {
		request.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		request.Description = *in.Description
	}
	if in.Justification != nil {
		request.Justification = *in.Justification
	}
	if in.Priority != nil {
		request.Priority = *in.Priority
	}
	if in.ExpectedDate != nil {
		request.ExpectedDate = in.ExpectedDate
	}
	if in.Comments != nil {
		request.Comments = *in.Comments
	}
	request.UpdatedAt = time.Now()

	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	return toResponse(request), nil
}

// List lista solicitudes con paginación.
func (uc *RequestUseCase) List(limit, offset int) (*dto.AssetRequestListResponse, error) {
	list, err := uc.requestRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResponse(r))
	}
	return &dto.AssetRequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Submit envía la solicitud a revisión y notifica al staff.
func (uc *RequestUseCase) Submit(ctx context.Context, id string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionSubmit, "", func(request *entity.AssetRequest) *entity.AuditEntry {
		return &entity.AuditEntry{
			RecordType:   entity.AuditRecordRequest,
			RecordID:     request.ID,
			Body:         fmt.Sprintf("Nueva solicitud de %s", uc.employeeName(request.RequesterID)),
			AuthorID:     request.RequesterID,
			RecipientIDs: uc.staffEmployeeIDs(),
		}
	})
}

// StartProgress toma la solicitud: estado in_progress y responsable = actor.
func (uc *RequestUseCase) StartProgress(ctx context.Context, id, actorUserID string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionStart, actorUserID, nil)
}

// Approve aprueba la solicitud.
func (uc *RequestUseCase) Approve(ctx context.Context, id string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionApprove, "", nil)
}

// Complete cierra la solicitud: fecha de ejecución hoy y aviso al solicitante.
func (uc *RequestUseCase) Complete(ctx context.Context, id string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionComplete, "", func(request *entity.AssetRequest) *entity.AuditEntry {
		return &entity.AuditEntry{
			RecordType:   entity.AuditRecordRequest,
			RecordID:     request.ID,
			Body:         "Su solicitud ha sido completada",
			RecipientIDs: []string{request.RequesterID},
		}
	})
}

// Reject rechaza la solicitud y avisa al solicitante.
func (uc *RequestUseCase) Reject(ctx context.Context, id string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionReject, "", func(request *entity.AssetRequest) *entity.AuditEntry {
		return &entity.AuditEntry{
			RecordType:   entity.AuditRecordRequest,
			RecordID:     request.ID,
			Body:         "Su solicitud ha sido rechazada",
			RecipientIDs: []string{request.RequesterID},
		}
	})
}

// Cancel cancela la solicitud.
func (uc *RequestUseCase) Cancel(ctx context.Context, id string) (*dto.AssetRequestResponse, error) {
	return uc.transition(ctx, id, workflow.ActionCancel, "", nil)
}

// transition aplica una acción del workflow: valida contra la tabla de
// transiciones, persiste el nuevo estado y deja la notificación, en una tx.
func (uc *RequestUseCase) transition(
	ctx context.Context,
	id string,
	action workflow.Action,
	assignToUserID string,
	note func(*entity.AssetRequest) *entity.AuditEntry,
) (*dto.AssetRequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	newState, err := workflow.Apply(request.State, action)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}

	assignedTo := request.AssignedToID
	if assignToUserID != "" {
		assignedTo = assignToUserID
	}
	completionDate := request.CompletionDate
	if newState == workflow.StateDone {
		today := time.Now()
		completionDate = &today
	}

	err = uc.txRunner.RunRequest(ctx, func(
		reqRepo repository.AssetRequestRepository,
		auditRepo repository.AuditRepository,
		_ repository.SequenceRepository,
	) error {
		if err := reqRepo.UpdateState(id, newState, assignedTo, completionDate); err != nil {
			return err
		}
		if note == nil {
			return nil
		}
		entry := note(request)
		entry.ID = uuid.New().String()
		entry.CreatedAt = time.Now()
		return auditRepo.Append(entry)
	})
	if err != nil {
		return nil, err
	}

	request.State = newState
	request.AssignedToID = assignedTo
	request.CompletionDate = completionDate
	return toResponse(request), nil
}

// staffEmployeeIDs empleados enlazados a usuarios con rol de gestión.
func (uc *RequestUseCase) staffEmployeeIDs() []string {
	users, err := uc.userRepo.ListByRoles(entity.StaffRoles)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if u.EmployeeID != "" {
			ids = append(ids, u.EmployeeID)
		}
	}
	return ids
}

func (uc *RequestUseCase) employeeName(employeeID string) string {
	if emp, err := uc.employeeRepo.GetByID(employeeID); err == nil && emp != nil {
		return emp.Name
	}
	return employeeID
}

func toResponse(r *entity.AssetRequest) *dto.AssetRequestResponse {
	if r == nil {
		return nil
	}
	return &dto.AssetRequestResponse{
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
