package portal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/portal"
	"github.com/jhoicas/Activos-api/internal/application/requests"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
	"github.com/jhoicas/Activos-api/pkg/portaltoken"
)

const testTokenSecret = "portal-secret-for-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssetRepo struct {
	repository.AssetRepository
	assets    map[string]*entity.Asset
	lastLimit int
	lastSort  string
}

func (f *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	return f.assets[id], nil
}

func (f *fakeAssetRepo) matches(a *entity.Asset, employeeID string, states []string) bool {
	if a.EmployeeID != employeeID {
		return false
	}
	for _, s := range states {
		if a.State == s {
			return true
		}
	}
	return false
}

func (f *fakeAssetRepo) ListByEmployee(employeeID string, states []string, sortBy string, limit, offset int) ([]*entity.Asset, error) {
	f.lastLimit = limit
	f.lastSort = sortBy
	var out []*entity.Asset
	for _, a := range f.assets {
		if f.matches(a, employeeID, states) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) CountByEmployee(employeeID string, states []string) (int, error) {
	n := 0
	for _, a := range f.assets {
		if f.matches(a, employeeID, states) {
			n++
		}
	}
	return n, nil
}

type fakeRequestRepo struct {
	repository.AssetRequestRepository
	store     map[string]*entity.AssetRequest
	lastState workflow.State
	lastSort  string
}

func (f *fakeRequestRepo) Create(r *entity.AssetRequest) error {
	f.store[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) GetByID(id string) (*entity.AssetRequest, error) {
	return f.store[id], nil
}

func (f *fakeRequestRepo) ListByRequester(requesterID string, state workflow.State, sortBy string, limit, offset int) ([]*entity.AssetRequest, error) {
	f.lastState = state
	f.lastSort = sortBy
	var out []*entity.AssetRequest
	for _, r := range f.store {
		if r.RequesterID != requesterID {
			continue
		}
		if state != "" && r.State != state {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) CountByRequester(requesterID string, state workflow.State) (int, error) {
	list, _ := f.ListByRequester(requesterID, state, "", 0, 0)
	return len(list), nil
}

func (f *fakeRequestRepo) CountByAsset(assetID string) (int, error) {
	n := 0
	for _, r := range f.store {
		if r.AssetID == assetID {
			n++
		}
	}
	return n, nil
}

type fakeAuditRepo struct {
	repository.AuditRepository
	entries []*entity.AuditEntry
}

func (f *fakeAuditRepo) Append(e *entity.AuditEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) ListByRecord(recordType, recordID string, limit, offset int) ([]*entity.AuditEntry, error) {
	var out []*entity.AuditEntry
	for _, e := range f.entries {
		if e.RecordType == recordType && e.RecordID == recordID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	repository.AssetCategoryRepository
	categories map[string]*entity.AssetCategory
}

func (f *fakeCategoryRepo) List(limit, offset int) ([]*entity.AssetCategory, error) {
	var out []*entity.AssetCategory
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.AssetCategory, error) {
	return f.categories[id], nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	employees map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.employees[id], nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users []*entity.User
}

func (f *fakeUserRepo) ListByRoles(roles []string) ([]*entity.User, error) {
	return f.users, nil
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

type fakeTxRunner struct {
	reqRepo   *fakeRequestRepo
	auditRepo *fakeAuditRepo
	seqRepo   *fakeSeqRepo
}

func (f *fakeTxRunner) RunRequest(ctx context.Context, fn func(
	reqRepo repository.AssetRequestRepository,
	auditRepo repository.AuditRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(f.reqRepo, f.auditRepo, f.seqRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos empleados, activos en varios estados y una solicitud ajena.
// ──────────────────────────────────────────────────────────────────────────────

type portalFixture struct {
	uc        *portal.PortalUseCase
	assetRepo *fakeAssetRepo
	reqRepo   *fakeRequestRepo
	auditRepo *fakeAuditRepo
}

func newPortalFixture(pageSize int) *portalFixture {
	assetRepo := &fakeAssetRepo{assets: map[string]*entity.Asset{
		"asset-mio":       {ID: "asset-mio", Name: "Laptop Dell", Code: "AST-00001", State: entity.AssetStateAssigned, EmployeeID: "emp-1", Active: true},
		"asset-en-uso":    {ID: "asset-en-uso", Name: "Monitor LG", Code: "AST-00002", State: entity.AssetStateInUse, EmployeeID: "emp-1", Active: true},
		"asset-almacen":   {ID: "asset-almacen", Name: "Teclado", Code: "AST-00003", State: entity.AssetStateAvailable, Active: true},
		"asset-de-otro":   {ID: "asset-de-otro", Name: "Impresora", Code: "AST-00004", State: entity.AssetStateAssigned, EmployeeID: "emp-2", Active: true},
	}}
	reqRepo := &fakeRequestRepo{store: map[string]*entity.AssetRequest{
		"req-mia": {
			ID: "req-mia", Number: "REQ-00001", RequestType: entity.RequestTypeNew,
			RequesterID: "emp-1", State: workflow.StateSubmitted, Priority: entity.PriorityMedium,
		},
		"req-ajena": {
			ID: "req-ajena", Number: "REQ-00002", RequestType: entity.RequestTypeNew,
			RequesterID: "emp-2", State: workflow.StateSubmitted, Priority: entity.PriorityMedium,
		},
	}}
	auditRepo := &fakeAuditRepo{}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.AssetCategory{
		"cat-padre":    {ID: "cat-padre", Name: "Computadores", Active: true},
		"cat-hija":     {ID: "cat-hija", Name: "Laptops", ParentID: "cat-padre", Active: true},
		"cat-inactiva": {ID: "cat-inactiva", Name: "Obsoletos", Active: false},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana Pérez"},
		"emp-2": {ID: "emp-2", Name: "Luis Gómez"},
	}}
	userRepo := &fakeUserRepo{}
	seqRepo := &fakeSeqRepo{}
	tx := &fakeTxRunner{reqRepo: reqRepo, auditRepo: auditRepo, seqRepo: seqRepo}
	requestUC := requests.NewRequestUseCase(tx, reqRepo, assetRepo, employeeRepo, userRepo)

	return &portalFixture{
		uc:        portal.NewPortalUseCase(assetRepo, reqRepo, auditRepo, categoryRepo, requestUC, testTokenSecret, pageSize),
		assetRepo: assetRepo,
		reqRepo:   reqRepo,
		auditRepo: auditRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Home y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestHome_Contadores(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.Home("emp-1")
	require.NoError(t, err)

	assert.Equal(t, 2, out.AssetCount, "solo cuentan los activos asignados o en uso")
	assert.Equal(t, 1, out.RequestCount, "solo cuentan las solicitudes propias")
}

func TestListAssets_RecortaAlEmpleadoYAplicaOrdenPorDefecto(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.ListAssets("emp-1", dto.PortalAssetListRequest{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, repository.AssetSortDate, f.assetRepo.lastSort,
		"sin sortby el listado ordena por fecha de asignación")
	for _, item := range out.Items {
		assert.Equal(t, "emp-1", item.EmployeeID)
	}
}

func TestListAssets_LimiteRecortadoAlTamanioDePagina(t *testing.T) {
	f := newPortalFixture(5)

	_, err := f.uc.ListAssets("emp-1", dto.PortalAssetListRequest{
		Page: dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, f.assetRepo.lastLimit,
		"el portal nunca pide más que su tamaño de página")
}

func TestListRequests_FiltroMapeaAlEstado(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.ListRequests("emp-1", dto.PortalRequestListRequest{FilterBy: "submitted"})
	require.NoError(t, err)

	assert.Equal(t, workflow.StateSubmitted, f.reqRepo.lastState)
	assert.Len(t, out.Items, 1)
}

func TestListRequests_SinFiltroTraeTodo(t *testing.T) {
	f := newPortalFixture(20)

	_, err := f.uc.ListRequests("emp-1", dto.PortalRequestListRequest{})
	require.NoError(t, err)

	assert.Equal(t, workflow.State(""), f.reqRepo.lastState, "all no filtra por estado")
}

func TestListRequests_FiltroDesconocidoRechazado(t *testing.T) {
	f := newPortalFixture(20)

	_, err := f.uc.ListRequests("emp-1", dto.PortalRequestListRequest{FilterBy: "archivadas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Control de acceso a registros individuales
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAsset_DuenioAccede(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.GetAsset("emp-1", "asset-mio", "")
	require.NoError(t, err)
	assert.Equal(t, "AST-00001", out.Code)
}

func TestGetAsset_AjenoSinTokenDenegado(t *testing.T) {
	f := newPortalFixture(20)

	_, err := f.uc.GetAsset("emp-1", "asset-de-otro", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetAsset_AjenoConTokenValidoAccede(t *testing.T) {
	f := newPortalFixture(20)
	tok, err := portaltoken.Sign(testTokenSecret, portaltoken.RecordAsset, "asset-de-otro")
	require.NoError(t, err)

	out, err := f.uc.GetAsset("emp-1", "asset-de-otro", tok)
	require.NoError(t, err)
	assert.Equal(t, "asset-de-otro", out.ID,
		"el portador de un token válido accede sin ser el dueño")
}

func TestGetAsset_InexistenteSeDisfrazaDeProhibido(t *testing.T) {
	f := newPortalFixture(20)

	_, err := f.uc.GetAsset("emp-1", "no-existe", "")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"no existir y no ser tuyo deben ser indistinguibles desde fuera")
}

func TestGetRequest_DuenioRecibeTokenYActividad(t *testing.T) {
	f := newPortalFixture(20)
	f.auditRepo.entries = append(f.auditRepo.entries, &entity.AuditEntry{
		RecordType: entity.AuditRecordRequest,
		RecordID:   "req-mia",
		Body:       "Nueva solicitud de Ana Pérez",
		CreatedAt:  time.Now(),
	})

	out, err := f.uc.GetRequest("emp-1", "req-mia", "")
	require.NoError(t, err)

	assert.Equal(t, "REQ-00001", out.Request.Number)
	require.NotEmpty(t, out.AccessToken)
	assert.NoError(t, portaltoken.Verify(testTokenSecret, out.AccessToken, portaltoken.RecordRequest, "req-mia"),
		"el token devuelto debe validar contra la propia solicitud")

	require.Len(t, out.Messages, 1)
	assert.Equal(t, "Nueva solicitud de Ana Pérez", out.Messages[0].Body)
}

func TestGetRequest_AjenaSinTokenDenegada(t *testing.T) {
	f := newPortalFixture(20)

	_, err := f.uc.GetRequest("emp-1", "req-ajena", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetRequest_TokenDeOtroRegistroDenegado(t *testing.T) {
	f := newPortalFixture(20)
	tok, err := portaltoken.Sign(testTokenSecret, portaltoken.RecordRequest, "req-mia")
	require.NoError(t, err)

	_, err = f.uc.GetRequest("emp-1", "req-ajena", tok)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un token firmado para otra solicitud no abre esta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario y alta desde el portal
// ──────────────────────────────────────────────────────────────────────────────

func TestNewRequestForm_CategoriasActivasYActivosPropios(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.NewRequestForm("emp-1")
	require.NoError(t, err)

	require.Len(t, out.Categories, 2, "las categorías inactivas no se ofrecen")
	names := map[string]string{}
	for _, c := range out.Categories {
		names[c.ID] = c.DisplayName
	}
	assert.Equal(t, "Computadores", names["cat-padre"])
	assert.Equal(t, "Computadores / Laptops", names["cat-hija"],
		"el nombre visible compone un nivel de ancestro")

	assert.Len(t, out.Assets, 2, "solo los activos en mano son candidatos a reparación")
}

func TestCreateRequest_QuedaEnviada(t *testing.T) {
	f := newPortalFixture(20)

	out, err := f.uc.CreateRequest(context.Background(), "emp-1", dto.CreateAssetRequestRequest{
		RequestType: entity.RequestTypeNew,
		Description: "Necesito un segundo monitor",
	})
	require.NoError(t, err)

	assert.Equal(t, string(workflow.StateSubmitted), out.State,
		"una solicitud del portal jamás queda visible en borrador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Comentarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAddComment_RecortaEspaciosYRegistraAutor(t *testing.T) {
	f := newPortalFixture(20)

	err := f.uc.AddComment("emp-1", "req-mia", dto.PortalCommentRequest{
		Message: "  ¿Hay novedades?  ",
	})
	require.NoError(t, err)

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, "¿Hay novedades?", f.auditRepo.entries[0].Body)
	assert.Equal(t, "emp-1", f.auditRepo.entries[0].AuthorID)
	assert.Equal(t, entity.AuditRecordRequest, f.auditRepo.entries[0].RecordType)
}

func TestAddComment_VacioRechazado(t *testing.T) {
	f := newPortalFixture(20)

	err := f.uc.AddComment("emp-1", "req-mia", dto.PortalCommentRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.auditRepo.entries)
}

func TestAddComment_SolicitudAjenaDenegada(t *testing.T) {
	f := newPortalFixture(20)

	err := f.uc.AddComment("emp-1", "req-ajena", dto.PortalCommentRequest{Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
