package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/jhoicas/catalogo-api/internal/application/event"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

var _ event.Publisher = (*RedisPublisher)(nil)

// RedisPublisher adaptador de producción del puerto event.Publisher sobre
// Redis PUB/SUB. Cada tipo de evento tiene su canal, resuelto desde config
// (equivalente al mapeo tipo -> tópico de un broker).
type RedisPublisher struct {
	rdb      *goredis.Client
	channels map[string]string
	log      *logger.Logger
}

// NewRedisPublisher conecta el cliente y verifica la conexión con un ping.
func NewRedisPublisher(cfg config.EventsConfig, log *logger.Logger) (*RedisPublisher, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisPublisher{
		rdb: rdb,
		channels: map[string]string{
			event.TypeProductCreated: cfg.ProductCreatedChannel,
			event.TypeSkuCreated:     cfg.SkuCreatedChannel,
		},
		log: log.Component("redis_publisher"),
	}, nil
}

// Publish serializa el sobre y lo publica en el canal de su tipo.
func (p *RedisPublisher) Publish(ctx context.Context, e event.Event) error {
	channel, ok := p.channels[e.Type]
	if !ok {
		return fmt.Errorf("sin canal configurado para el tipo de evento %q", e.Type)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", e.ID, err)
	}
	if err := p.rdb.Publish(ctx, channel, raw).Err(); err != nil {
		return fmt.Errorf("publicar en %s: %w", channel, err)
	}
	p.log.Debug().
		Str("event_id", e.ID).
		Str("type", e.Type).
		Str("key", e.Key).
		Msg("evento publicado")
	return nil
}

// PublishAll publica en secuencia y corta en el primer fallo. Los eventos ya
// publicados no se retiran: entrega at-least-once, consumidores idempotentes.
func (p *RedisPublisher) PublishAll(ctx context.Context, events []event.Event) error {
	for i, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			return fmt.Errorf("evento %d de %d (%s): %w", i+1, len(events), e.Key, err)
		}
	}
	return nil
}

// Close cierra la conexión a Redis.
func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
