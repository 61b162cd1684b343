package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Métodos extra de los fakes que solo usa el caso de uso de activos.

func (f *fakeAssetRepo) Create(a *entity.Asset) error {
	f.assets[a.ID] = a
	return nil
}

func (f *fakeAssetRepo) Update(a *entity.Asset) error {
	f.assets[a.ID] = a
	return nil
}

func (f *fakeAssetRepo) UpdateState(assetID, state string, active bool) error {
	a, ok := f.assets[assetID]
	if !ok {
		return domain.ErrNotFound
	}
	a.State = state
	a.Active = active
	return nil
}

type fakeCategoryRepo struct {
	repository.AssetCategoryRepository
	categories map[string]*entity.AssetCategory
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.AssetCategory, error) {
	return f.categories[id], nil
}

type fakeRequestCountRepo struct {
	repository.AssetRequestRepository
}

func (f *fakeRequestCountRepo) CountByAsset(assetID string) (int, error) {
	return 0, nil
}

type assetFixture struct {
	uc        *assets.AssetUseCase
	assetRepo *fakeAssetRepo
	movRepo   *fakeMovementRepo
}

func newAssetFixture() *assetFixture {
	assetRepo := &fakeAssetRepo{assets: map[string]*entity.Asset{
		"asset-libre":    {ID: "asset-libre", Name: "Laptop Dell", Code: "AST-00001", CategoryID: "cat-1", State: entity.AssetStateAvailable, Active: true},
		"asset-asignado": {ID: "asset-asignado", Name: "Monitor LG", Code: "AST-00002", CategoryID: "cat-1", State: entity.AssetStateAssigned, EmployeeID: "emp-1", Active: true},
	}}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.AssetCategory{
		"cat-1": {ID: "cat-1", Name: "Computadores", Active: true},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana Pérez"},
		"emp-2": {ID: "emp-2", Name: "Luis Gómez"},
	}}
	movRepo := &fakeMovementRepo{}
	auditRepo := &fakeAuditRepo{}
	seqRepo := &fakeSeqRepo{}
	tx := &fakeTxRunner{movRepo: movRepo, assetRepo: assetRepo, auditRepo: auditRepo, seqRepo: seqRepo}
	reassign := assets.NewReassignUseCase(tx, assetRepo, employeeRepo)
	uc := assets.NewAssetUseCase(assetRepo, categoryRepo, movRepo, &fakeRequestCountRepo{}, seqRepo, reassign)
	return &assetFixture{uc: uc, assetRepo: assetRepo, movRepo: movRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetCreate_NumeroDeInventarioYEstadoInicial(t *testing.T) {
	f := newAssetFixture()

	out, err := f.uc.Create(dto.CreateAssetRequest{Name: "Servidor HP", CategoryID: "cat-1"})
	require.NoError(t, err)

	assert.Equal(t, "AST-00001", out.Code, "el número de inventario sale de la secuencia de activos")
	assert.Equal(t, entity.AssetStatePurchase, out.State, "un activo nace en estado de compra")
	assert.True(t, out.Active)
	assert.Equal(t, out.Code, out.QRCode, "con código asignado el QR lo refleja")
}

func TestAssetCreate_CategoriaInexistenteRechazada(t *testing.T) {
	f := newAssetFixture()

	_, err := f.uc.Create(dto.CreateAssetRequest{Name: "Servidor HP", CategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Acciones de ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestSetInUse_SinEmpleadoEsViolacion(t *testing.T) {
	f := newAssetFixture()

	err := f.uc.SetInUse("asset-libre")
	assert.ErrorIs(t, err, domain.ErrValidation,
		"en uso exige un empleado responsable")
}

func TestSetInUse_ConEmpleado(t *testing.T) {
	f := newAssetFixture()

	require.NoError(t, f.uc.SetInUse("asset-asignado"))
	assert.Equal(t, entity.AssetStateInUse, f.assetRepo.assets["asset-asignado"].State)
}

func TestRetire_ArchivaElActivo(t *testing.T) {
	f := newAssetFixture()

	require.NoError(t, f.uc.Retire("asset-asignado"))

	a := f.assetRepo.assets["asset-asignado"]
	assert.Equal(t, entity.AssetStateRetired, a.State)
	assert.False(t, a.Active, "dar de baja archiva el registro, no lo borra")
}

func TestSetAvailable_DevuelveAlAlmacen(t *testing.T) {
	f := newAssetFixture()

	require.NoError(t, f.uc.SetAvailable(context.Background(), "asset-asignado"))

	a := f.assetRepo.assets["asset-asignado"]
	assert.Empty(t, a.EmployeeID, "volver al almacén limpia el empleado")
	assert.Equal(t, entity.AssetStateAvailable, a.State)
	assert.Empty(t, f.movRepo.created, "una devolución no genera traslado")
}

func TestSetMaintenance(t *testing.T) {
	f := newAssetFixture()

	require.NoError(t, f.uc.SetMaintenance("asset-asignado"))
	assert.Equal(t, entity.AssetStateMaintenance, f.assetRepo.assets["asset-asignado"].State)
}

func TestAccionesSobreActivoInexistente(t *testing.T) {
	f := newAssetFixture()

	assert.ErrorIs(t, f.uc.SetInUse("no-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.SetMaintenance("no-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.Retire("no-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.SetAvailable(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PATCH con employee_id: shim sobre el camino canónico de traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EmployeeIDGeneraTraslado(t *testing.T) {
	f := newAssetFixture()

	emp := "emp-2"
	out, err := f.uc.Update(context.Background(), "asset-libre", "user-1", dto.UpdateAssetRequest{
		EmployeeID: &emp,
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-2", out.EmployeeID)
	require.Len(t, f.movRepo.created, 1,
		"cambiar el empleado por PATCH pasa por el libro de traslados")
	assert.Equal(t, "MOV-00001", f.movRepo.created[0].Number)
}

func TestUpdate_EmployeeIDVacioRechazado(t *testing.T) {
	f := newAssetFixture()

	empty := ""
	_, err := f.uc.Update(context.Background(), "asset-asignado", "user-1", dto.UpdateAssetRequest{
		EmployeeID: &empty,
	})
	assert.ErrorIs(t, err, domain.ErrValidation,
		"la devolución al almacén tiene su propia acción")
}

func TestUpdate_CamposEditables(t *testing.T) {
	f := newAssetFixture()

	name := "Laptop Dell XPS"
	notes := "pantalla cambiada"
	out, err := f.uc.Update(context.Background(), "asset-libre", "user-1", dto.UpdateAssetRequest{
		Name:  &name,
		Notes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laptop Dell XPS", out.Name)
	assert.Equal(t, "pantalla cambiada", out.Notes)
	assert.Equal(t, "AST-00001", out.Code, "el número de inventario nunca se reescribe")
}
