package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// OptionSpec especificación de una opción dentro de un grupo.
type OptionSpec struct {
	Name            string
	AdditionalPrice int64
	Ordering        int
}

// OptionGroupSpec especificación de un grupo de opciones del producto.
type OptionGroupSpec struct {
	Name     string
	Ordering int
	Options  []OptionSpec
}

// ProductSpec datos validados para construir el agregado Product completo.
type ProductSpec struct {
	Name              string
	Description       string
	Price             int64
	Status            entity.ProductStatus
	CategoryID        string
	CategoryCode      string
	ThumbnailImageURL string
	Brand             string
	OptionGroups      []OptionGroupSpec
}

// BuildProduct arma el agregado: producto, grupos y opciones con referencias
// inversas cableadas, y expande los SKUs de cada combinación. El agregado queda
// completo en memoria; la persistencia atómica es responsabilidad del caller.
func BuildProduct(spec ProductSpec) *entity.Product {
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Code:              GenerateProductCode(spec.Name),
		Name:              spec.Name,
		Description:       spec.Description,
		Price:             spec.Price,
		Status:            spec.Status,
		CategoryID:        spec.CategoryID,
		CategoryCode:      spec.CategoryCode,
		ThumbnailImageURL: spec.ThumbnailImageURL,
		Brand:             spec.Brand,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	for _, groupSpec := range spec.OptionGroups {
		group := &entity.ProductOptionGroup{
			ID:        uuid.New().String(),
			Name:      groupSpec.Name,
			Ordering:  groupSpec.Ordering,
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, optSpec := range groupSpec.Options {
			group.AddOption(&entity.ProductOption{
				ID:              uuid.New().String(),
				Name:            optSpec.Name,
				AdditionalPrice: optSpec.AdditionalPrice,
				Ordering:        optSpec.Ordering,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
		}
		product.AddOptionGroup(group)
	}

	ExpandSkus(product)
	return product
}
