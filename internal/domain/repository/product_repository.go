package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductSearch condiciones del listado paginado de productos.
type ProductSearch struct {
	CategoryID string               // opcional
	Keyword    string               // opcional, busca en name y description
	Status     entity.ProductStatus // obligatorio: el listado filtra por status
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create persiste el agregado completo; los hijos nunca se guardan por fuera.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID carga solo los campos escalares del producto.
	GetByID(id string) (*entity.Product, error)
	// GetByIDWithOptions carga además los grupos de opciones y sus opciones.
	GetByIDWithOptions(id string) (*entity.Product, error)
	// Search lista productos según condiciones y devuelve el total sin paginar.
	Search(search ProductSearch) ([]*entity.Product, int, error)
	// Update sobreescribe los campos escalares; no toca grupos ni SKUs.
	Update(product *entity.Product) error
}
