package dto

import "time"

// CreateCategoryRequest alta de categoría de activos.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id" validate:"omitempty,uuid4"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	Active      *bool   `json:"active"`
}

// CategoryResponse categoría con su nombre visible compuesto y conteo de activos.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"` // "Padre / Nombre" si hay padre
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	AssetCount  int       `json:"asset_count"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse listado paginado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
