package catalog

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// GenerateSkuID deriva el identificador de SKU a partir del código del producto
// y la combinación de opciones elegida. Es una función pura: misma entrada,
// mismo id. Formato: {productCode}-{valores ordenados por grupo}-{hash hex}.
//
// El hash corto protege contra combinaciones distintas cuyo string de valores
// coincide (grupos diferentes con los mismos valores). No es criptográfico; la
// garantía autoritativa es el unique constraint sobre sku_id en la base.
func GenerateSkuID(productCode string, options map[string]string) string {
	if len(options) == 0 {
		// Producto sin opciones: el producto mismo es la única variante.
		return productCode
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, options[k])
	}
	optionString := strings.Join(values, "-")

	h := fnv.New32a()
	h.Write([]byte(optionString))

	return fmt.Sprintf("%s-%s-%X", productCode, optionString, h.Sum32())
}

// CanonicalOptionValues serializa la combinación como JSON con claves
// ordenadas, para que la misma combinación produzca siempre el mismo string.
func CanonicalOptionValues(options map[string]string) string {
	// json.Marshal ordena las claves de un map; suficiente para la forma canónica.
	b, _ := json.Marshal(options)
	return string(b)
}

// ExpandSkus genera los SKUs del producto: el producto cartesiano de una opción
// por cada grupo. El precio de cada SKU es el precio base más la suma de los
// AdditionalPrice de las opciones elegidas (precio de transacción).
//
// Sin grupos de opciones, el producto cartesiano vacío tiene exactamente una
// combinación: se genera un único SKU con la combinación vacía.
func ExpandSkus(p *entity.Product) {
	combos := expandCombinations(p.OptionGroups)
	now := time.Now()

	for _, combo := range combos {
		extra := int64(0)
		values := make(map[string]string, len(combo))
		for groupName, opt := range combo {
			values[groupName] = opt.Name
			extra += opt.AdditionalPrice
		}
		p.AddSku(&entity.ProductSku{
			ID:           uuid.New().String(),
			SkuID:        GenerateSkuID(p.Code, values),
			Price:        p.Price + extra,
			OptionValues: CanonicalOptionValues(values),
			CreatedAt:    now,
		})
	}
}

// expandCombinations enumera una opción por grupo, respetando el orden de los
// grupos y de las opciones tal como vienen en el agregado.
func expandCombinations(groups []*entity.ProductOptionGroup) []map[string]*entity.ProductOption {
	combos := []map[string]*entity.ProductOption{{}}
	for _, group := range groups {
		next := make([]map[string]*entity.ProductOption, 0, len(combos)*len(group.Options))
		for _, combo := range combos {
			for _, opt := range group.Options {
				extended := make(map[string]*entity.ProductOption, len(combo)+1)
				for k, v := range combo {
					extended[k] = v
				}
				extended[group.Name] = opt
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
