package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/event"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func sampleProduct() *entity.Product {
	p := &entity.Product{
		ID:    "prod-1",
		Code:  "CAMISE-AB12CD",
		Name:  "Camiseta",
		Price: 1000,
	}
	p.Skus = []*entity.ProductSku{
		{ID: "s1", SkuID: "CAMISE-AB12CD-Rojo-1A2B3C4D", Price: 1000, OptionValues: `{"Color":"Rojo"}`, Product: p},
		{ID: "s2", SkuID: "CAMISE-AB12CD-Azul-5E6F7A8B", Price: 1100, OptionValues: `{"Color":"Azul"}`, Product: p},
	}
	return p
}

func TestToProductCreatedEvent(t *testing.T) {
	p := sampleProduct()
	e := event.ToProductCreatedEvent(p)

	assert.Equal(t, event.TypeProductCreated, e.Type)
	assert.Equal(t, event.Source, e.Source)
	assert.Equal(t, p.ID, e.Key, "la clave de particionamiento es el id del producto")
	assert.NotEmpty(t, e.ID)

	payload, ok := e.Data.(event.ProductCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, p.Code, payload.ProductCode)
}

func TestToSkuCreatedEvents_UnoPorVariante(t *testing.T) {
	p := sampleProduct()
	events := event.ToSkuCreatedEvents(p)
	require.Len(t, events, 2)

	for i, e := range events {
		assert.Equal(t, event.TypeSkuCreated, e.Type)
		payload, ok := e.Data.(event.SkuCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, p.Skus[i].SkuID, payload.SkuID)
		assert.Equal(t, p.Skus[i].SkuID, e.Key, "la clave de particionamiento es el sku_id")
		assert.Equal(t, p.Skus[i].Price, payload.Price)
	}
}

// Key es transporte, no payload: no debe viajar en el JSON del sobre.
func TestEvent_KeyNoSeSerializa(t *testing.T) {
	e := event.ToProductCreatedEvent(sampleProduct())
	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "Key")
	assert.NotContains(t, decoded, "key")
	assert.Equal(t, event.TypeProductCreated, decoded["type"])
}
