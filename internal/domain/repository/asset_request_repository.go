package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

// Claves de ordenamiento y filtrado para listados de solicitudes del portal.
const (
	RequestSortDate  = "date" // fecha de solicitud desc (por defecto)
	RequestSortName  = "name" // número de solicitud
	RequestSortState = "state"
)

// AssetRequestRepository define el puerto de persistencia para AssetRequest (DIP).
type AssetRequestRepository interface {
	Create(request *entity.AssetRequest) error
	GetByID(id string) (*entity.AssetRequest, error)
	Update(request *entity.AssetRequest) error
	UpdateState(id string, state workflow.State, assignedToID string, completionDate *time.Time) error
	List(limit, offset int) ([]*entity.AssetRequest, error)
	ListByRequester(requesterID string, state workflow.State, sortBy string, limit, offset int) ([]*entity.AssetRequest, error)
	CountByRequester(requesterID string, state workflow.State) (int, error)
	CountByAsset(assetID string) (int, error)
}
