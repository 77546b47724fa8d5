package entity

import "time"

// ProductStatus ciclo de vida del producto. El borrado es lógico (status = DELETED).
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
	ProductStatusDeleted  ProductStatus = "DELETED"
)

// IsValid verifica que el status sea uno de los valores conocidos.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDeleted:
		return true
	}
	return false
}

// Product agregado raíz del catálogo. Es el único punto de mutación de sus
// OptionGroups y Skus: se persisten y eliminan en cascada con el producto.
type Product struct {
	ID                string
	Code              string // código legible, semilla del SKU id
	Name              string
	Description       string
	Price             int64 // unidad monetaria mínima, >= 0
	Status            ProductStatus
	CategoryID        string // vacío si no tiene categoría
	CategoryCode      string // denormalizado desde Category al crear
	ThumbnailImageURL string
	Brand             string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	OptionGroups []*ProductOptionGroup
	Skus         []*ProductSku
}

// AddOptionGroup agrega un grupo manteniendo la referencia inversa al producto.
func (p *Product) AddOptionGroup(group *ProductOptionGroup) {
	group.Product = p
	p.OptionGroups = append(p.OptionGroups, group)
}

// AddSku agrega un SKU manteniendo la referencia inversa al producto.
func (p *Product) AddSku(sku *ProductSku) {
	sku.Product = p
	p.Skus = append(p.Skus, sku)
}

// Delete marca el producto como eliminado (borrado lógico, la fila persiste).
func (p *Product) Delete() {
	p.Status = ProductStatusDeleted
	p.UpdatedAt = time.Now()
}

// IsDeleted indica si el producto fue borrado lógicamente.
func (p *Product) IsDeleted() bool {
	return p.Status == ProductStatusDeleted
}

// ProductOptionGroup eje de variación del producto (ej. "Color").
type ProductOptionGroup struct {
	ID        string
	Product   *Product `json:"-"`
	Name      string
	Ordering  int
	CreatedAt time.Time
	UpdatedAt time.Time

	Options []*ProductOption
}

// AddOption agrega una opción manteniendo la referencia inversa al grupo.
func (g *ProductOptionGroup) AddOption(option *ProductOption) {
	option.OptionGroup = g
	g.Options = append(g.Options, option)
}

// ProductOption valor concreto dentro de un grupo (ej. "Rojo").
type ProductOption struct {
	ID              string
	OptionGroup     *ProductOptionGroup `json:"-"`
	Name            string
	AdditionalPrice int64 // recargo sobre el precio base, >= 0
	Ordering        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductSku variante vendible: una combinación concreta de opciones.
// Price es el precio de transacción (base + recargos), independiente del
// precio de lista que el producto tenga después.
type ProductSku struct {
	ID           string
	SkuID        string   // identificador derivado, único global
	Product      *Product `json:"-"`
	Price        int64
	OptionValues string // JSON canónico {grupo: opción} con claves ordenadas
	CreatedAt    time.Time
}
