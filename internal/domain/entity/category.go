package entity

import "time"

// Category representa una categoría del catálogo (jerarquía por parent_id).
// Depth se calcula al crear (padre.Depth + 1, raíz = 0) y no lo envía el cliente.
type Category struct {
	ID        string
	Name      string
	Code      string // código legible, denormalizado en productos
	ParentID  string // vacío si es raíz
	Depth     int
	Ordering  int // orden entre hermanos
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
