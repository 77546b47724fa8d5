package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ToProductCreatedEvent mapea el producto persistido al evento de creación.
func ToProductCreatedEvent(p *entity.Product) Event {
	return newEvent(TypeProductCreated, p.ID, ProductCreatedEvent{
		ProductID:         p.ID,
		ProductCode:       p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Status:            string(p.Status),
		CategoryID:        p.CategoryID,
		ThumbnailImageURL: p.ThumbnailImageURL,
		Brand:             p.Brand,
		CreatedAt:         p.CreatedAt,
	})
}

// ToSkuCreatedEvents mapea cada SKU del producto a su evento individual.
func ToSkuCreatedEvents(p *entity.Product) []Event {
	events := make([]Event, 0, len(p.Skus))
	for _, sku := range p.Skus {
		events = append(events, newEvent(TypeSkuCreated, sku.SkuID, SkuCreatedEvent{
			SkuID:        sku.SkuID,
			ProductID:    p.ID,
			ProductCode:  p.Code,
			Price:        sku.Price,
			OptionValues: json.RawMessage(sku.OptionValues),
			CreatedAt:    sku.CreatedAt,
		}))
	}
	return events
}

func newEvent(eventType, key string, data any) Event {
	return Event{
		ID:     uuid.New().String(),
		Source: Source,
		Type:   eventType,
		Time:   time.Now(),
		Data:   data,
		Key:    key,
	}
}
