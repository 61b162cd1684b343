package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// AssetUseCase CRUD y acciones de ciclo de vida de activos. Los cambios de
// empleado se canalizan siempre por ReassignUseCase.
type AssetUseCase struct {
	assetRepo    repository.AssetRepository
	categoryRepo repository.AssetCategoryRepository
	movementRepo repository.AssetMovementRepository
	requestRepo  repository.AssetRequestRepository
	seqRepo      repository.SequenceRepository
	reassign     *ReassignUseCase
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	categoryRepo repository.AssetCategoryRepository,
	movementRepo repository.AssetMovementRepository,
	requestRepo repository.AssetRequestRepository,
	seqRepo repository.SequenceRepository,
	reassign *ReassignUseCase,
) *AssetUseCase {
	return &AssetUseCase{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		requestRepo:  requestRepo,
		seqRepo:      seqRepo,
		reassign:     reassign,
	}
}

// Create da de alta un activo. El número de inventario sale de la secuencia
// it.asset y se asigna exactamente una vez; nace en estado purchase.
func (uc *AssetUseCase) Create(in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: la categoría no existe", domain.ErrValidation)
	}

	seq, err := uc.seqRepo.NextByCode(repository.SeqAsset)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	price := decimal.Zero
	if in.PurchasePrice != nil {
		price = *in.PurchasePrice
	}
	asset := &entity.Asset{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Code:           fmt.Sprintf("AST-%05d", seq),
		CategoryID:     in.CategoryID,
		Description:    in.Description,
		SerialNumber:   in.SerialNumber,
		Manufacturer:   in.Manufacturer,
		Model:          in.Model,
		Specifications: in.Specifications,
		PurchaseDate:   in.PurchaseDate,
		PurchasePrice:  price,
		WarrantyEnd:    in.WarrantyEnd,
		State:          entity.AssetStatePurchase,
		Active:         true,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.assetRepo.Create(asset); err != nil {
		return nil, err
	}
	return uc.toResponse(asset), nil
}

// GetByID obtiene un activo por ID con sus derivados (QR, conteo de solicitudes).
func (uc *AssetUseCase) GetByID(id string) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return uc.toResponse(asset), nil
}

// Update actualiza los campos editables de un activo. El código inventario se
// descarta siempre, incluso si el cliente manda el placeholder de nuevo; un
// cambio de empleado se convierte en traslado (shim de compatibilidad).
func (uc *AssetUseCase) Update(ctx context.Context, id, actorUserID string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}

	if in.Name != nil {
		asset.Name = *in.Name
	}
	if in.CategoryID != nil && *in.CategoryID != asset.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: la categoría no existe", domain.ErrValidation)
		}
		asset.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		asset.Description = *in.Description
	}
	if in.SerialNumber != nil {
		asset.SerialNumber = *in.SerialNumber
	}
	if in.Manufacturer != nil {
		asset.Manufacturer = *in.Manufacturer
	}
	if in.Model != nil {
		asset.Model = *in.Model
	}
	if in.Specifications != nil {
		asset.Specifications = *in.Specifications
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = in.PurchaseDate
	}
	if in.PurchasePrice != nil {
		asset.PurchasePrice = *in.PurchasePrice
	}
	if in.WarrantyEnd != nil {
		asset.WarrantyEnd = in.WarrantyEnd
	}
	if in.Notes != nil {
		asset.Notes = *in.Notes
	}
	asset.UpdatedAt = time.Now()
	if err := uc.assetRepo.Update(asset); err != nil {
		return nil, err
	}

	// Shim: un employee_id en el PATCH equivale a registrar un traslado.
	if in.EmployeeID != nil && *in.EmployeeID != asset.EmployeeID {
		if *in.EmployeeID == "" {
			return nil, fmt.Errorf("%w: para devolver al almacén use la acción set-available", domain.ErrValidation)
		}
		if _, err := uc.reassign.Reassign(ctx, ReassignInput{
			AssetID:      asset.ID,
			EmployeeID:   *in.EmployeeID,
			MovementType: entity.MovementTypeAssignment,
			Notes:        "Asignado al empleado",
			UserID:       actorUserID,
		}); err != nil {
			return nil, err
		}
	}

	updated, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated), nil
}

// List lista activos con paginación.
func (uc *AssetUseCase) List(limit, offset int) (*dto.AssetListResponse, error) {
	list, err := uc.assetRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *uc.toResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements lista el historial de traslados de un activo.
func (uc *AssetUseCase) ListMovements(assetID string, limit, offset int) (*dto.MovementListResponse, error) {
	asset, err := uc.assetRepo.GetByID(assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movementRepo.ListByAsset(assetID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RegisterMovement registra un traslado vía el camino canónico.
func (uc *AssetUseCase) RegisterMovement(ctx context.Context, assetID, actorUserID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	movement, err := uc.reassign.Reassign(ctx, ReassignInput{
		AssetID:      assetID,
		EmployeeID:   in.EmployeeID,
		MovementType: in.MovementType,
		MovementDate: in.MovementDate,
		Reason:       in.Reason,
		Notes:        in.Notes,
		UserID:       actorUserID,
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(movement)
	return &out, nil
}

// SetInUse pasa el activo a "en uso". Sin empleado asignado es una violación.
func (uc *AssetUseCase) SetInUse(id string) error {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if asset.EmployeeID == "" {
		return fmt.Errorf("%w: no se puede poner en uso un activo sin empleado asignado", domain.ErrValidation)
	}
	return uc.assetRepo.UpdateState(id, entity.AssetStateInUse, asset.Active)
}

// SetMaintenance pasa el activo a mantenimiento.
func (uc *AssetUseCase) SetMaintenance(id string) error {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.assetRepo.UpdateState(id, entity.AssetStateMaintenance, asset.Active)
}

// SetAvailable devuelve el activo al almacén: estado available y sin empleado.
func (uc *AssetUseCase) SetAvailable(ctx context.Context, id string) error {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if err := uc.reassign.ReturnToWarehouse(ctx, id); err != nil {
		return err
	}
	return uc.assetRepo.UpdateState(id, entity.AssetStateAvailable, asset.Active)
}

// Retire da de baja el activo: estado retired y archivado (active=false).
func (uc *AssetUseCase) Retire(id string) error {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.assetRepo.UpdateState(id, entity.AssetStateRetired, false)
}

func (uc *AssetUseCase) toResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	requestCount, err := uc.requestRepo.CountByAsset(a.ID)
	if err != nil {
		requestCount = 0
	}
	return &dto.AssetResponse{
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

func toMovementResponse(m *entity.AssetMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                 m.ID,
		Number:             m.Number,
		AssetID:            m.AssetID,
		AssetCode:          m.AssetCode,
		AssetCategory:      m.AssetCategory,
		PreviousEmployeeID: m.PreviousEmployeeID,
		EmployeeID:         m.EmployeeID,
		MovementDate:       m.MovementDate,
		MovementType:       m.MovementType,
		Reason:             m.Reason,
		Notes:              m.Notes,
		UserID:             m.UserID,
		CreatedAt:          m.CreatedAt,
	}
}
