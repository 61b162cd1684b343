package entity

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

// Tipos de solicitud de activo.
const (
	RequestTypeNew         = "new"
	RequestTypeRepair      = "repair"
	RequestTypeReplacement = "replacement"
)

// Prioridades de ejecución.
const (
	PriorityLow      = "0"
	PriorityMedium   = "1"
	PriorityHigh     = "2"
	PriorityCritical = "3"
)

// RequestNumberPlaceholder valor del número antes de asignar la secuencia.
const RequestNumberPlaceholder = "New"

// AssetRequest solicitud de un empleado: activo nuevo, reparación o reemplazo.
// Invariante: repair/replacement exigen AssetID; new lo deja vacío.
type AssetRequest struct {
	ID             string
	Number         string // secuencia it.asset.request
	RequestType    string
	RequesterID    string // empleado solicitante
	AssetID        string // obligatorio para repair/replacement
	CategoryID     string // categoría deseada para activos nuevos
	Description    string
	Justification  string
	State          workflow.State
	Priority       string
	AssignedToID   string // usuario responsable (staff)
	RequestDate    time.Time
	ExpectedDate   *time.Time
	CompletionDate *time.Time
	Comments       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RequiresAsset indica si el tipo de solicitud exige un activo referenciado.
func RequiresAsset(requestType string) bool {
	return requestType == RequestTypeRepair || requestType == RequestTypeReplacement
}
