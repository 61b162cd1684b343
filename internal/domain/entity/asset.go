package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un activo.
const (
	AssetStatePurchase    = "purchase"
	AssetStateAvailable   = "available"
	AssetStateAssigned    = "assigned"
	AssetStateInUse       = "in_use"
	AssetStateMaintenance = "maintenance"
	AssetStateRetired     = "retired"
)

// AssetCodePlaceholder valor del código inventario antes de asignar la secuencia.
const AssetCodePlaceholder = "New"

// Asset activo IT: características técnicas, información financiera,
// estado del ciclo de vida y empleado responsable.
// Invariante: in_use exige EmployeeID no vacío.
type Asset struct {
	ID             string
	Name           string
	Code           string // número de inventario, asignado una sola vez al crear
	CategoryID     string
	Description    string
	SerialNumber   string
	Manufacturer   string
	Model          string
	Specifications string
	PurchaseDate   *time.Time
	PurchasePrice  decimal.Decimal
	WarrantyEnd    *time.Time
	State          string
	EmployeeID     string // vacío = en almacén
	AssignmentDate *time.Time
	Active         bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QRCode devuelve el contenido del código QR del activo: el número de
// inventario cuando ya está asignado, vacío mientras sea el placeholder.
func (a *Asset) QRCode() string {
	if a.Code == AssetCodePlaceholder {
		return ""
	}
	return a.Code
}
