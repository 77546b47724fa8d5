package event

import (
	"context"
	"encoding/json"
	"time"
)

// Tipos de evento de integración que emite el servicio.
const (
	TypeProductCreated = "catalog.product.created"
	TypeSkuCreated     = "catalog.sku.created"

	Source = "catalogo-api"
)

// Event sobre de integración (estilo CloudEvents). Data lleva el payload
// concreto; Key es la clave de particionamiento del broker y no se serializa.
type Event struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Type   string    `json:"type"`
	Time   time.Time `json:"time"`
	Data   any       `json:"data"`

	Key string `json:"-"`
}

// Publisher puerto de publicación de eventos. El adaptador de producción es un
// cliente de broker; el de tests, un grabador en memoria.
//
// PublishAll publica en secuencia y corta en el primer fallo: la entrega es
// at-least-once y los consumidores deben ser idempotentes por sku_id.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	PublishAll(ctx context.Context, events []Event) error
}

// ProductCreatedEvent payload del evento de producto creado. Solo campos
// escalares del producto; los SKUs viajan en eventos individuales.
type ProductCreatedEvent struct {
	ProductID         string    `json:"product_id"`
	ProductCode       string    `json:"product_code"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Price             int64     `json:"price"`
	Status            string    `json:"status"`
	CategoryID        string    `json:"category_id,omitempty"`
	ThumbnailImageURL string    `json:"thumbnail_image_url,omitempty"`
	Brand             string    `json:"brand,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// SkuCreatedEvent payload por cada SKU creado. Lo consume el servicio de
// inventario para inicializar stock.
type SkuCreatedEvent struct {
	SkuID           string          `json:"sku_id"`
	ProductID       string          `json:"product_id"`
	ProductCode     string          `json:"product_code"`
	Price           int64           `json:"price"`
	OptionValues    json.RawMessage `json:"option_values"`
	InitialQuantity int             `json:"initial_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
}
