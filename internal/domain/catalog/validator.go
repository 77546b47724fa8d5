package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// DefaultMaxSkuCount tope de SKUs por producto si la configuración no define otro.
const DefaultMaxSkuCount = 100

// ProductValidator política conectable que valida la especificación de grupos
// antes de construir el agregado. Rechazar aquí evita persistencias parciales.
type ProductValidator struct {
	maxSkuCount int
}

// NewProductValidator construye el validador con el tope de SKUs configurado.
func NewProductValidator(maxSkuCount int) *ProductValidator {
	if maxSkuCount <= 0 {
		maxSkuCount = DefaultMaxSkuCount
	}
	return &ProductValidator{maxSkuCount: maxSkuCount}
}

// Validate verifica la estructura de los grupos y el número de SKUs que
// produciría la expansión cartesiana.
func (v *ProductValidator) Validate(groups []OptionGroupSpec) error {
	seen := make(map[string]bool, len(groups))
	skuCount := 1
	for _, group := range groups {
		if group.Name == "" {
			return fmt.Errorf("%w: grupo de opciones sin nombre", domain.ErrInvalidInput)
		}
		if seen[group.Name] {
			return fmt.Errorf("%w: grupo de opciones duplicado %q", domain.ErrInvalidInput, group.Name)
		}
		seen[group.Name] = true

		if len(group.Options) == 0 {
			return fmt.Errorf("%w: el grupo %q no tiene opciones", domain.ErrInvalidInput, group.Name)
		}
		for _, opt := range group.Options {
			if opt.Name == "" {
				return fmt.Errorf("%w: opción sin nombre en el grupo %q", domain.ErrInvalidInput, group.Name)
			}
			if opt.AdditionalPrice < 0 {
				return fmt.Errorf("%w: additional_price negativo en %q/%q", domain.ErrInvalidInput, group.Name, opt.Name)
			}
		}
		skuCount *= len(group.Options)
	}

	if skuCount > v.maxSkuCount {
		return fmt.Errorf("%w: la expansión produciría %d SKUs (máximo %d)", domain.ErrInvalidInput, skuCount, v.maxSkuCount)
	}
	return nil
}
