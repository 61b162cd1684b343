package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest alta de activo. El código inventario no se acepta:
// lo asigna la secuencia al crear.
type CreateAssetRequest struct {
	Name           string           `json:"name" validate:"required"`
	CategoryID     string           `json:"category_id" validate:"required,uuid4"`
	Description    string           `json:"description"`
	SerialNumber   string           `json:"serial_number"`
	Manufacturer   string           `json:"manufacturer"`
	Model          string           `json:"model"`
	Specifications string           `json:"specifications"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	WarrantyEnd    *time.Time       `json:"warranty_end_date"`
	Notes          string           `json:"notes"`
}

// UpdateAssetRequest actualización parcial de activo. Code se ignora siempre
// (el inventario nunca se renumera); EmployeeID se canaliza como traslado.
type UpdateAssetRequest struct {
	Name           *string          `json:"name"`
	Code           *string          `json:"code"` // aceptado y descartado: compatibilidad
	CategoryID     *string          `json:"category_id"`
	Description    *string          `json:"description"`
	SerialNumber   *string          `json:"serial_number"`
	Manufacturer   *string          `json:"manufacturer"`
	Model          *string          `json:"model"`
	Specifications *string          `json:"specifications"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	WarrantyEnd    *time.Time       `json:"warranty_end_date"`
	EmployeeID     *string          `json:"employee_id"` // shim: genera un traslado
	Notes          *string          `json:"notes"`
}

// AssetResponse activo con campos derivados.
type AssetResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	QRCode         string          `json:"qr_code,omitempty"`
	CategoryID     string          `json:"category_id"`
	Description    string          `json:"description,omitempty"`
	SerialNumber   string          `json:"serial_number,omitempty"`
	Manufacturer   string          `json:"manufacturer,omitempty"`
	Model          string          `json:"model,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
	PurchaseDate   *time.Time      `json:"purchase_date,omitempty"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	WarrantyEnd    *time.Time      `json:"warranty_end_date,omitempty"`
	State          string          `json:"state"`
	EmployeeID     string          `json:"employee_id,omitempty"`
	AssignmentDate *time.Time      `json:"assignment_date,omitempty"`
	RequestCount   int             `json:"request_count"`
	Active         bool            `json:"active"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AssetListResponse listado paginado de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
