package catalog_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// GenerateSkuID
// ──────────────────────────────────────────────────────────────────────────────

// Misma entrada, mismo id: es una función pura sin estado.
func TestGenerateSkuID_Determinista(t *testing.T) {
	options := map[string]string{"Color": "Rojo", "Talla": "M"}

	first := catalog.GenerateSkuID("CAMISE-AB12CD", options)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, catalog.GenerateSkuID("CAMISE-AB12CD", options))
	}
}

func TestGenerateSkuID_CombinacionesDistintas(t *testing.T) {
	base := catalog.GenerateSkuID("P1", map[string]string{"Color": "Rojo", "Talla": "M"})
	otra := catalog.GenerateSkuID("P1", map[string]string{"Color": "Rojo", "Talla": "L"})
	assert.NotEqual(t, base, otra)
}

// El orden de inserción del map no altera el id: las entradas se ordenan por
// nombre de grupo antes de unir los valores.
func TestGenerateSkuID_OrdenCanonico(t *testing.T) {
	a := catalog.GenerateSkuID("P1", map[string]string{"Talla": "M", "Color": "Rojo"})
	b := catalog.GenerateSkuID("P1", map[string]string{"Color": "Rojo", "Talla": "M"})
	assert.Equal(t, a, b)
	// Color < Talla: los valores van en ese orden.
	assert.True(t, strings.HasPrefix(a, "P1-Rojo-M-"), "id inesperado: %s", a)
}

// El hash distingue combinaciones cuyos valores unidos coinciden pero cuyos
// grupos difieren.
func TestGenerateSkuID_HashDesambigua(t *testing.T) {
	a := catalog.GenerateSkuID("P1", map[string]string{"Color": "Rojo", "Talla": "M"})
	b := catalog.GenerateSkuID("P1", map[string]string{"Acabado": "Rojo", "Medida": "M"})
	assert.NotEqual(t, a, b)
}

// Sin opciones, el producto mismo es la variante.
func TestGenerateSkuID_SinOpciones(t *testing.T) {
	assert.Equal(t, "P1", catalog.GenerateSkuID("P1", nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// ExpandSkus
// ──────────────────────────────────────────────────────────────────────────────

func productoConGrupos(price int64, groups ...catalog.OptionGroupSpec) *entity.Product {
	return catalog.BuildProduct(catalog.ProductSpec{
		Name:         "Camiseta",
		Price:        price,
		Status:       entity.ProductStatusActive,
		OptionGroups: groups,
	})
}

// Dos grupos de 2 y 3 opciones producen exactamente 6 SKUs, cada uno con una
// combinación distinta.
func TestExpandSkus_ProductoCartesiano(t *testing.T) {
	product := productoConGrupos(1000,
		catalog.OptionGroupSpec{Name: "Color", Options: []catalog.OptionSpec{
			{Name: "Rojo"}, {Name: "Azul"},
		}},
		catalog.OptionGroupSpec{Name: "Talla", Options: []catalog.OptionSpec{
			{Name: "S"}, {Name: "M"}, {Name: "L"},
		}},
	)

	require.Len(t, product.Skus, 6)

	combos := make(map[string]bool)
	ids := make(map[string]bool)
	for _, sku := range product.Skus {
		assert.False(t, combos[sku.OptionValues], "combinación repetida: %s", sku.OptionValues)
		assert.False(t, ids[sku.SkuID], "sku_id repetido: %s", sku.SkuID)
		combos[sku.OptionValues] = true
		ids[sku.SkuID] = true
		assert.Same(t, product, sku.Product)
	}
}

// El precio del SKU es el base más los recargos de las opciones elegidas.
func TestExpandSkus_PrecioAditivo(t *testing.T) {
	product := productoConGrupos(1000,
		catalog.OptionGroupSpec{Name: "Talla", Options: []catalog.OptionSpec{
			{Name: "S", AdditionalPrice: 0},
			{Name: "XL", AdditionalPrice: 500},
		}},
	)

	require.Len(t, product.Skus, 2)
	prices := make(map[string]int64)
	for _, sku := range product.Skus {
		var values map[string]string
		require.NoError(t, json.Unmarshal([]byte(sku.OptionValues), &values))
		prices[values["Talla"]] = sku.Price
	}
	assert.Equal(t, int64(1000), prices["S"])
	assert.Equal(t, int64(1500), prices["XL"])
}

// Producto sin grupos: la combinación vacía genera un único SKU al precio base.
func TestExpandSkus_SinGrupos(t *testing.T) {
	product := productoConGrupos(2500)

	require.Len(t, product.Skus, 1)
	sku := product.Skus[0]
	assert.Equal(t, product.Code, sku.SkuID)
	assert.Equal(t, int64(2500), sku.Price)
	assert.Equal(t, "{}", sku.OptionValues)
}

// OptionValues es JSON canónico: claves ordenadas, estable entre ejecuciones.
func TestExpandSkus_OptionValuesCanonico(t *testing.T) {
	product := productoConGrupos(100,
		catalog.OptionGroupSpec{Name: "Talla", Options: []catalog.OptionSpec{{Name: "M"}}},
		catalog.OptionGroupSpec{Name: "Color", Options: []catalog.OptionSpec{{Name: "Rojo"}}},
	)

	require.Len(t, product.Skus, 1)
	assert.Equal(t, `{"Color":"Rojo","Talla":"M"}`, product.Skus[0].OptionValues)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildProduct
// ──────────────────────────────────────────────────────────────────────────────

// Las referencias inversas del agregado quedan cableadas: opción -> grupo,
// grupo -> producto.
func TestBuildProduct_ReferenciasInversas(t *testing.T) {
	product := productoConGrupos(100,
		catalog.OptionGroupSpec{Name: "Color", Ordering: 1, Options: []catalog.OptionSpec{
			{Name: "Rojo", AdditionalPrice: 10, Ordering: 2},
		}},
	)

	require.Len(t, product.OptionGroups, 1)
	group := product.OptionGroups[0]
	assert.Same(t, product, group.Product)
	assert.Equal(t, 1, group.Ordering)

	require.Len(t, group.Options, 1)
	opt := group.Options[0]
	assert.Same(t, group, opt.OptionGroup)
	assert.Equal(t, int64(10), opt.AdditionalPrice)
	assert.Equal(t, 2, opt.Ordering)

	assert.NotEmpty(t, product.ID)
	assert.NotEmpty(t, product.Code)
	assert.NotEmpty(t, group.ID)
	assert.NotEmpty(t, opt.ID)
}
