package messaging

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/event"
)

var _ event.Publisher = (*MemoryPublisher)(nil)

// MemoryPublisher adaptador en memoria del puerto event.Publisher: graba lo
// publicado para que los tests lo inspeccionen. FailAfter permite simular un
// fallo de broker a mitad de un lote.
type MemoryPublisher struct {
	mu        sync.Mutex
	events    []event.Event
	FailAfter int // < 0 nunca falla; n >= 0 falla en la publicación n+1
	Err       error
}

// NewMemoryPublisher construye el grabador sin fallos programados.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{FailAfter: -1}
}

// Publish graba el evento, o falla si se agotó FailAfter.
func (p *MemoryPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailAfter >= 0 && len(p.events) >= p.FailAfter {
		return p.Err
	}
	p.events = append(p.events, e)
	return nil
}

// PublishAll publica en secuencia con la misma semántica de corte que el
// adaptador real.
func (p *MemoryPublisher) PublishAll(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Events devuelve una copia de lo publicado hasta ahora.
func (p *MemoryPublisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}

// EventsOfType filtra lo publicado por tipo.
func (p *MemoryPublisher) EventsOfType(eventType string) []event.Event {
	var out []event.Event
	for _, e := range p.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
