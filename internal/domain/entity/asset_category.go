package entity

import "time"

// AssetCategory categoría jerárquica de activos IT (computadores, servidores, móviles, etc).
// Borrar una categoría borra en cascada sus hijas (FK ON DELETE CASCADE).
type AssetCategory struct {
	ID          string
	Name        string
	Code        string // código único opcional
	Description string
	ParentID    string // vacío si es raíz
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayNameWith compone el nombre visible con un solo nivel de ancestro:
// "Padre / Nombre" si hay padre, si no el nombre a secas.
func (c *AssetCategory) DisplayNameWith(parent *AssetCategory) string {
	if parent == nil {
		return c.Name
	}
	return parent.Name + " / " + c.Name
}
