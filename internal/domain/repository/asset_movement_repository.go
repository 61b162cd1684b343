package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AssetMovementRepository define el puerto de persistencia para el libro de
// traslados (DIP). Append-only: no hay Update ni Delete.
type AssetMovementRepository interface {
	Create(movement *entity.AssetMovement) error
	GetByID(id string) (*entity.AssetMovement, error)
	ListByAsset(assetID string, limit, offset int) ([]*entity.AssetMovement, error)
	List(limit, offset int) ([]*entity.AssetMovement, error)
}
