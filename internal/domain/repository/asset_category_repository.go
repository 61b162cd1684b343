package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AssetCategoryRepository define el puerto de persistencia para AssetCategory (DIP).
// Delete borra en cascada las categorías hijas (FK ON DELETE CASCADE).
type AssetCategoryRepository interface {
	Create(category *entity.AssetCategory) error
	GetByID(id string) (*entity.AssetCategory, error)
	Update(category *entity.AssetCategory) error
	List(limit, offset int) ([]*entity.AssetCategory, error)
	ListByParent(parentID string) ([]*entity.AssetCategory, error)
	Delete(id string) error
}
