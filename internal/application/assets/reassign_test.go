package assets_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Embeben la interfaz del puerto: solo se implementa lo que
// el caso de uso toca; cualquier otro método delataría la llamada con un panic.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssetRepo struct {
	repository.AssetRepository
	assets map[string]*entity.Asset
}

func (f *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	return f.assets[id], nil
}

func (f *fakeAssetRepo) UpdateEmployee(assetID, employeeID string, assignmentDate *time.Time) error {
	a, ok := f.assets[assetID]
	if !ok {
		return domain.ErrNotFound
	}
	a.EmployeeID = employeeID
	a.AssignmentDate = assignmentDate
	if employeeID == "" {
		a.State = entity.AssetStateAvailable
	} else {
		a.State = entity.AssetStateAssigned
	}
	return nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	employees map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.employees[id], nil
}

type fakeMovementRepo struct {
	repository.AssetMovementRepository
	created    []*entity.AssetMovement
	failCreate bool
}

func (f *fakeMovementRepo) Create(m *entity.AssetMovement) error {
	if f.failCreate {
		return errors.New("fallo simulado en el insert")
	}
	f.created = append(f.created, m)
	return nil
}

type fakeAuditRepo struct {
	repository.AuditRepository
	entries []*entity.AuditEntry
}

func (f *fakeAuditRepo) Append(e *entity.AuditEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

type fakeSeqRepo struct {
	repository.SequenceRepository
	counters map[string]int64
}

func (f *fakeSeqRepo) NextByCode(code string) (int64, error) {
	if f.counters == nil {
		f.counters = map[string]int64{}
	}
	f.counters[code]++
	return f.counters[code], nil
}

// fakeTxRunner ejecuta la función directamente con los fakes; el rollback se
// simula devolviendo el error tal cual.
type fakeTxRunner struct {
	movRepo   *fakeMovementRepo
	assetRepo *fakeAssetRepo
	auditRepo *fakeAuditRepo
	seqRepo   *fakeSeqRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.AssetMovementRepository,
	assetRepo repository.AssetRepository,
	auditRepo repository.AuditRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(f.movRepo, f.assetRepo, f.auditRepo, f.seqRepo)
}

type reassignFixture struct {
	uc        *assets.ReassignUseCase
	assetRepo *fakeAssetRepo
	movRepo   *fakeMovementRepo
	auditRepo *fakeAuditRepo
}

func newReassignFixture() *reassignFixture {
	assetRepo := &fakeAssetRepo{assets: map[string]*entity.Asset{
		"asset-1": {ID: "asset-1", Name: "Laptop Dell", Code: "AST-00001", State: entity.AssetStateAvailable, Active: true},
		"asset-2": {ID: "asset-2", Name: "Monitor LG", Code: "AST-00002", State: entity.AssetStateAssigned, EmployeeID: "emp-1", Active: true},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana Pérez"},
		"emp-2": {ID: "emp-2", Name: "Luis Gómez"},
	}}
	movRepo := &fakeMovementRepo{}
	auditRepo := &fakeAuditRepo{}
	seqRepo := &fakeSeqRepo{}
	tx := &fakeTxRunner{movRepo: movRepo, assetRepo: assetRepo, auditRepo: auditRepo, seqRepo: seqRepo}
	return &reassignFixture{
		uc:        assets.NewReassignUseCase(tx, assetRepo, employeeRepo),
		assetRepo: assetRepo,
		movRepo:   movRepo,
		auditRepo: auditRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reassign
// ──────────────────────────────────────────────────────────────────────────────

func TestReassign_DesdeAlmacen(t *testing.T) {
	f := newReassignFixture()

	mov, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:    "asset-1",
		EmployeeID: "emp-1",
		UserID:     "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, "MOV-00001", mov.Number, "el número debe salir de la secuencia de traslados")
	assert.Empty(t, mov.PreviousEmployeeID, "desde el almacén no hay poseedor anterior")
	assert.Equal(t, entity.MovementTypeAssignment, mov.MovementType,
		"sin tipo explícito el traslado es una asignación")

	require.Len(t, f.movRepo.created, 1, "debe persistirse exactamente un traslado")
	assert.Equal(t, "emp-1", f.assetRepo.assets["asset-1"].EmployeeID,
		"el activo debe quedar en manos del receptor")
	assert.Equal(t, entity.AssetStateAssigned, f.assetRepo.assets["asset-1"].State)

	require.Len(t, f.auditRepo.entries, 1, "cada traslado deja una entrada de auditoría")
	assert.Equal(t, "Activo trasladado de almacén a Ana Pérez", f.auditRepo.entries[0].Body)
	assert.Equal(t, entity.AuditRecordAsset, f.auditRepo.entries[0].RecordType)
}

func TestReassign_EntreEmpleados(t *testing.T) {
	f := newReassignFixture()

	mov, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:      "asset-2",
		EmployeeID:   "emp-2",
		MovementType: entity.MovementTypeTransfer,
		Reason:       "cambio de puesto",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", mov.PreviousEmployeeID)
	assert.Equal(t, "emp-2", mov.EmployeeID)
	assert.Equal(t, "Activo trasladado de Ana Pérez a Luis Gómez", f.auditRepo.entries[0].Body)
}

func TestReassign_MismoEmpleadoRechazado(t *testing.T) {
	f := newReassignFixture()

	_, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:    "asset-2",
		EmployeeID: "emp-1", // ya lo tiene
	})
	assert.ErrorIs(t, err, domain.ErrValidation,
		"trasladar un activo al empleado que ya lo tiene debe rechazarse")
	assert.Empty(t, f.movRepo.created, "un traslado rechazado no toca el libro")
}

func TestReassign_ActivoInexistente(t *testing.T) {
	f := newReassignFixture()

	_, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:    "no-existe",
		EmployeeID: "emp-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReassign_ReceptorInexistente(t *testing.T) {
	f := newReassignFixture()

	_, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:    "asset-1",
		EmployeeID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReassign_EntradaIncompleta(t *testing.T) {
	f := newReassignFixture()

	_, err := f.uc.Reassign(context.Background(), assets.ReassignInput{AssetID: "asset-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el receptor es obligatorio")
}

func TestReassign_SecuenciaMonotonica(t *testing.T) {
	f := newReassignFixture()
	ctx := context.Background()

	first, err := f.uc.Reassign(ctx, assets.ReassignInput{AssetID: "asset-1", EmployeeID: "emp-1"})
	require.NoError(t, err)
	second, err := f.uc.Reassign(ctx, assets.ReassignInput{AssetID: "asset-1", EmployeeID: "emp-2"})
	require.NoError(t, err)

	assert.Equal(t, "MOV-00001", first.Number)
	assert.Equal(t, "MOV-00002", second.Number, "cada traslado consume el siguiente número")
}

func TestReassign_FalloEnTxNoDejaMediaEscritura(t *testing.T) {
	f := newReassignFixture()
	f.movRepo.failCreate = true

	_, err := f.uc.Reassign(context.Background(), assets.ReassignInput{
		AssetID:    "asset-1",
		EmployeeID: "emp-1",
	})
	require.Error(t, err)

	assert.Empty(t, f.assetRepo.assets["asset-1"].EmployeeID,
		"si el traslado no se persiste el activo no cambia de manos")
	assert.Empty(t, f.auditRepo.entries, "sin traslado no hay entrada de auditoría")
}

// ──────────────────────────────────────────────────────────────────────────────
// ReturnToWarehouse
// ──────────────────────────────────────────────────────────────────────────────

func TestReturnToWarehouse_LimpiaEmpleado(t *testing.T) {
	f := newReassignFixture()

	err := f.uc.ReturnToWarehouse(context.Background(), "asset-2")
	require.NoError(t, err)

	assert.Empty(t, f.assetRepo.assets["asset-2"].EmployeeID)
	assert.Equal(t, entity.AssetStateAvailable, f.assetRepo.assets["asset-2"].State)
	assert.Empty(t, f.movRepo.created, "una devolución no genera traslado en el libro")

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, fmt.Sprintf("Activo devuelto al %s por Ana Pérez", assets.WarehouseLabel),
		f.auditRepo.entries[0].Body)
}

func TestReturnToWarehouse_SinEmpleadoEsNoOp(t *testing.T) {
	f := newReassignFixture()

	err := f.uc.ReturnToWarehouse(context.Background(), "asset-1")
	require.NoError(t, err)
	assert.Empty(t, f.auditRepo.entries, "devolver lo que ya está en almacén no deja rastro")
}

func TestReturnToWarehouse_ActivoInexistente(t *testing.T) {
	f := newReassignFixture()

	err := f.uc.ReturnToWarehouse(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
