package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func newCategoryUseCase() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeAssetCountRepo) {
	categoryRepo := newFakeCategoryRepo()
	assetRepo := &fakeAssetCountRepo{countsByCategory: map[string]int{}}
	return usecase.NewCategoryUseCase(categoryRepo, assetRepo), categoryRepo, assetRepo
}

func TestCategoryCreate_NombreVisibleConPadre(t *testing.T) {
	uc, repo, _ := newCategoryUseCase()
	repo.store["cat-padre"] = &entity.AssetCategory{ID: "cat-padre", Name: "Computadores", Active: true}

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Laptops", ParentID: "cat-padre"})
	require.NoError(t, err)

	assert.Equal(t, "Computadores / Laptops", out.DisplayName,
		"el nombre visible compone un solo nivel de ancestro")
	assert.True(t, out.Active, "una categoría nueva nace activa")
}

func TestCategoryCreate_PadreInexistenteRechazado(t *testing.T) {
	uc, _, _ := newCategoryUseCase()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Laptops", ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryUpdate_PropioPadreRechazado(t *testing.T) {
	uc, repo, _ := newCategoryUseCase()
	repo.store["cat-1"] = &entity.AssetCategory{ID: "cat-1", Name: "Servidores", Active: true}

	self := "cat-1"
	_, err := uc.Update("cat-1", dto.UpdateCategoryRequest{ParentID: &self})
	assert.ErrorIs(t, err, domain.ErrValidation,
		"una categoría no puede ser su propio padre")
}

func TestCategoryGetByID_IncluyeConteoDeActivos(t *testing.T) {
	uc, repo, assetRepo := newCategoryUseCase()
	repo.store["cat-1"] = &entity.AssetCategory{ID: "cat-1", Name: "Servidores", Active: true}
	assetRepo.countsByCategory["cat-1"] = 7

	out, err := uc.GetByID("cat-1")
	require.NoError(t, err)
	assert.Equal(t, 7, out.AssetCount)
}

func TestCategoryGetByID_InexistenteDevuelveNil(t *testing.T) {
	uc, _, _ := newCategoryUseCase()

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategoryDelete_InexistenteFalla(t *testing.T) {
	uc, _, _ := newCategoryUseCase()

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_Existente(t *testing.T) {
	uc, repo, _ := newCategoryUseCase()
	repo.store["cat-1"] = &entity.AssetCategory{ID: "cat-1", Name: "Servidores", Active: true}

	require.NoError(t, uc.Delete("cat-1"))
	assert.Equal(t, []string{"cat-1"}, repo.deleted,
		"el borrado llega al repositorio; las hijas caen por FK en cascada")
}
