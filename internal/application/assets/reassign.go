package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// WarehouseLabel etiqueta del poseedor anterior cuando el activo venía del almacén.
const WarehouseLabel = "almacén"

// ReassignUseCase es el único camino sancionado para cambiar el empleado
// asignado de un activo. Cada reasignación produce exactamente un traslado,
// una actualización del activo y una entrada de auditoría, en una transacción.
// Tanto el endpoint de traslados como el shim del PATCH de activos pasan por aquí.
type ReassignUseCase struct {
	txRunner     TxRunner
	assetRepo    repository.AssetRepository
	employeeRepo repository.EmployeeRepository
}

// NewReassignUseCase construye el caso de uso.
func NewReassignUseCase(txRunner TxRunner, assetRepo repository.AssetRepository, employeeRepo repository.EmployeeRepository) *ReassignUseCase {
	return &ReassignUseCase{txRunner: txRunner, assetRepo: assetRepo, employeeRepo: employeeRepo}
}

// ReassignInput entrada para registrar un traslado.
type ReassignInput struct {
	AssetID      string
	EmployeeID   string // quien recibe, obligatorio
	MovementType string // assignment si viene vacío
	MovementDate *time.Time
	Reason       string
	Notes        string
	UserID       string // usuario que registra
}

// Reassign valida, genera el número de traslado, persiste el movimiento,
// sobreescribe el empleado del activo y deja la nota de auditoría.
// Commit o Rollback como unidad: el puntero de empleado nunca queda
// actualizado sin su traslado persistido, ni al revés.
func (uc *ReassignUseCase) Reassign(ctx context.Context, input ReassignInput) (*entity.AssetMovement, error) {
	if input.AssetID == "" || input.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	asset, err := uc.assetRepo.GetByID(input.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	// Los co-implicados deben ser distintos
	if asset.EmployeeID != "" && asset.EmployeeID == input.EmployeeID {
		return nil, fmt.Errorf("%w: no se puede trasladar un activo al mismo empleado", domain.ErrValidation)
	}
	receiver, err := uc.employeeRepo.GetByID(input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.ErrNotFound
	}

	prevLabel := WarehouseLabel
	if asset.EmployeeID != "" {
		if prev, err := uc.employeeRepo.GetByID(asset.EmployeeID); err == nil && prev != nil {
			prevLabel = prev.Name
		}
	}

	now := time.Now()
	movementDate := now
	if input.MovementDate != nil {
		movementDate = *input.MovementDate
	}
	movementType := input.MovementType
	if movementType == "" {
		movementType = entity.MovementTypeAssignment
	}

	movement := &entity.AssetMovement{
		ID:                 uuid.New().String(),
		Number:             entity.MovementNumberPlaceholder,
		AssetID:            asset.ID,
		PreviousEmployeeID: asset.EmployeeID,
		EmployeeID:         input.EmployeeID,
		MovementDate:       movementDate,
		MovementType:       movementType,
		Reason:             input.Reason,
		Notes:              input.Notes,
		UserID:             input.UserID,
		CreatedAt:          now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.AssetMovementRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.NextByCode(repository.SeqMovement)
		if err != nil {
			return err
		}
		movement.Number = fmt.Sprintf("MOV-%05d", seq)
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := assetRepo.UpdateEmployee(asset.ID, input.EmployeeID, &movementDate); err != nil {
			return err
		}
		return auditRepo.Append(&entity.AuditEntry{
			ID:         uuid.New().String(),
			RecordType: entity.AuditRecordAsset,
			RecordID:   asset.ID,
			Body:       fmt.Sprintf("Activo trasladado de %s a %s", prevLabel, receiver.Name),
			AuthorID:   "",
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ReturnToWarehouse limpia el empleado asignado (devolución al almacén) y deja
// constancia en el log del activo. No genera traslado: el libro registra
// entregas a empleados, no devoluciones sin receptor.
func (uc *ReassignUseCase) ReturnToWarehouse(ctx context.Context, assetID string) error {
	asset, err := uc.assetRepo.GetByID(assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if asset.EmployeeID == "" {
		return nil
	}
	prevLabel := WarehouseLabel
	if prev, err := uc.employeeRepo.GetByID(asset.EmployeeID); err == nil && prev != nil {
		prevLabel = prev.Name
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.AssetMovementRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditRepository,
		_ repository.SequenceRepository,
	) error {
		if err := assetRepo.UpdateEmployee(assetID, "", nil); err != nil {
			return err
		}
		return auditRepo.Append(&entity.AuditEntry{
			ID:         uuid.New().String(),
			RecordType: entity.AuditRecordAsset,
			RecordID:   assetID,
			Body:       fmt.Sprintf("Activo devuelto al %s por %s", WarehouseLabel, prevLabel),
			CreatedAt:  now,
		})
	})
}
