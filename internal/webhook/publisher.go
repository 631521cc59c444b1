package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispatch_system/internal/models"
)

const (
	webhookQueueKey = "dispatch_webhook_events"
)

// WebhookPublisher - интерфейс для публикации событий об инцидентах
type WebhookPublisher interface {
	Publish(ctx context.Context, event models.IncidentEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event models.IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// MultiPublisher рассылает событие всем подписчикам и собирает их ошибки
type MultiPublisher struct {
	publishers []WebhookPublisher
}

func NewMultiPublisher(publishers ...WebhookPublisher) *MultiPublisher {
	return &MultiPublisher{publishers: publishers}
}

func (m *MultiPublisher) Publish(ctx context.Context, event models.IncidentEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
