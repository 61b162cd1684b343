package dto

import "time"

// CreateAssetRequestRequest alta de solicitud de activo (backend o portal).
// Para repair/replacement AssetID es obligatorio; para new se descarta.
type CreateAssetRequestRequest struct {
	RequestType   string     `json:"request_type" validate:"required,oneof=new repair replacement"`
	AssetID       string     `json:"asset_id" validate:"omitempty,uuid4"`
	CategoryID    string     `json:"category_id" validate:"omitempty,uuid4"`
	Description   string     `json:"description" validate:"required"`
	Justification string     `json:"justification"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=0 1 2 3"`
	ExpectedDate  *time.Time `json:"expected_date"`
}

// UpdateAssetRequestRequest actualización parcial de solicitud. La restricción
// repair/replacement-exige-activo se revalida en cada escritura.
type UpdateAssetRequestRequest struct {
	RequestType   *string    `json:"request_type"`
	AssetID       *string    `json:"asset_id"`
	CategoryID    *string    `json:"category_id"`
	Description   *string    `json:"description"`
	Justification *string    `json:"justification"`
	Priority      *string    `json:"priority"`
	ExpectedDate  *time.Time `json:"expected_date"`
	Comments      *string    `json:"comments"`
}

// AssetRequestResponse solicitud con su estado del workflow.
type AssetRequestResponse struct {
	ID             string     `json:"id"`
	Number         string     `json:"number"`
	RequestType    string     `json:"request_type"`
	RequesterID    string     `json:"requester_id"`
	AssetID        string     `json:"asset_id,omitempty"`
	CategoryID     string     `json:"category_id,omitempty"`
	Description    string     `json:"description"`
	Justification  string     `json:"justification,omitempty"`
	State          string     `json:"state"`
	Priority       string     `json:"priority"`
	AssignedToID   string     `json:"assigned_to_id,omitempty"`
	RequestDate    time.Time  `json:"request_date"`
	ExpectedDate   *time.Time `json:"expected_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Comments       string     `json:"comments,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AssetRequestListResponse listado paginado de solicitudes.
type AssetRequestListResponse struct {
	Items []AssetRequestResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
