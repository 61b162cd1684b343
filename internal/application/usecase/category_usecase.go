package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías de activos. El nombre visible compone un
// solo nivel de ancestro ("Padre / Nombre"); el borrado arrastra a las hijas.
type CategoryUseCase struct {
	categoryRepo repository.AssetCategoryRepository
	assetRepo    repository.AssetRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.AssetCategoryRepository, assetRepo repository.AssetRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, assetRepo: assetRepo}
}

// Create da de alta una categoría, validando el padre si se indica.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var parent *entity.AssetCategory
	if in.ParentID != "" {
		var err error
		parent, err = uc.categoryRepo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: la categoría padre no existe", domain.ErrValidation)
		}
	}
	now := time.Now()
	category := &entity.AssetCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		ParentID:    in.ParentID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return uc.toResponse(category, parent), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return uc.withParent(category)
}

// Update actualiza una categoría. Una categoría no puede ser su propio padre.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Code != nil {
		category.Code = *in.Code
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, fmt.Errorf("%w: una categoría no puede ser su propio padre", domain.ErrValidation)
		}
		if *in.ParentID != "" {
			parent, err := uc.categoryRepo.GetByID(*in.ParentID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, fmt.Errorf("%w: la categoría padre no existe", domain.ErrValidation)
			}
		}
		category.ParentID = *in.ParentID
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return uc.withParent(category)
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.categoryRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp, err := uc.withParent(c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra una categoría; las hijas caen en cascada por FK.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

func (uc *CategoryUseCase) withParent(c *entity.AssetCategory) (*dto.CategoryResponse, error) {
	var parent *entity.AssetCategory
	if c.ParentID != "" {
		var err error
		parent, err = uc.categoryRepo.GetByID(c.ParentID)
		if err != nil {
			return nil, err
		}
	}
	return uc.toResponse(c, parent), nil
}

func (uc *CategoryUseCase) toResponse(c *entity.AssetCategory, parent *entity.AssetCategory) *dto.CategoryResponse {
	assetCount, err := uc.assetRepo.CountByCategory(c.ID)
	if err != nil {
		assetCount = 0
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayNameWith(parent),
		Code:        c.Code,
		Description: c.Description,
		ParentID:    c.ParentID,
		AssetCount:  assetCount,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
