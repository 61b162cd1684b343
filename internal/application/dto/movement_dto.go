package dto

import "time"

// RegisterMovementRequest registro de un traslado de activo: el único camino
// sancionado para cambiar el empleado asignado.
type RegisterMovementRequest struct {
	EmployeeID   string     `json:"employee_id" validate:"required,uuid4"`
	MovementType string     `json:"movement_type" validate:"omitempty,oneof=assignment transfer return maintenance"`
	MovementDate *time.Time `json:"movement_date"`
	Reason       string     `json:"reason"`
	Notes        string     `json:"notes"`
}

// MovementResponse entrada del libro de traslados.
type MovementResponse struct {
	ID                 string    `json:"id"`
	Number             string    `json:"number"`
	AssetID            string    `json:"asset_id"`
	AssetCode          string    `json:"asset_code,omitempty"`
	AssetCategory      string    `json:"asset_category,omitempty"`
	PreviousEmployeeID string    `json:"previous_employee_id,omitempty"`
	EmployeeID         string    `json:"employee_id"`
	MovementDate       time.Time `json:"movement_date"`
	MovementType       string    `json:"movement_type"`
	Reason             string    `json:"reason,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	UserID             string    `json:"user_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de traslados.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
