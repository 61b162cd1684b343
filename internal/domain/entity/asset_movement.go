package entity

import (
	"fmt"
	"time"
)

// Tipos de traslado de activos.
const (
	MovementTypeAssignment  = "assignment"  // primera asignación
	MovementTypeTransfer    = "transfer"    // entre empleados
	MovementTypeReturn      = "return"      // devolución al almacén
	MovementTypeMaintenance = "maintenance" // envío a reparación
)

// MovementNumberPlaceholder valor del número antes de asignar la secuencia.
const MovementNumberPlaceholder = "/"

// AssetMovement entrada del libro de traslados: quién entrega, quién recibe,
// cuándo y por qué. Solo se crea; nunca se edita (ledger de auditoría).
// Invariante: PreviousEmployeeID != EmployeeID cuando ambos están presentes.
type AssetMovement struct {
	ID                 string
	Number             string // secuencia it.asset.movement
	AssetID            string
	PreviousEmployeeID string // vacío = venía del almacén
	EmployeeID         string // quien recibe, obligatorio
	MovementDate       time.Time
	MovementType       string
	Reason             string
	Notes              string
	UserID             string // quien registró el traslado

	// Denormalizados en lectura para listados
	AssetCode     string
	AssetCategory string
	CreatedAt     time.Time
}

// Label etiqueta legible del traslado: "activo → empleado (fecha)".
func (m *AssetMovement) Label(assetName, employeeName string) string {
	return fmt.Sprintf("%s → %s (%s)", assetName, employeeName, m.MovementDate.Format("2006-01-02"))
}
