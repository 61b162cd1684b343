package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Claves de ordenamiento para listados de activos del portal.
const (
	AssetSortDate     = "date" // fecha de asignación desc (por defecto)
	AssetSortName     = "name"
	AssetSortCategory = "category"
)

// AssetRepository define el puerto de persistencia para Asset (DIP).
// El código inventario y el empleado asignado solo cambian por los caminos
// dedicados (Create asigna el código una vez; UpdateEmployee es exclusivo
// del caso de uso de traslados).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	GetByCode(code string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	UpdateEmployee(assetID, employeeID string, assignmentDate *time.Time) error
	UpdateState(assetID, state string, active bool) error
	List(limit, offset int) ([]*entity.Asset, error)
	ListByEmployee(employeeID string, states []string, sortBy string, limit, offset int) ([]*entity.Asset, error)
	CountByEmployee(employeeID string, states []string) (int, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
