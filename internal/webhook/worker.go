package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Songmu/retry"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispatch_system/internal/config"
	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - ждать бесконечно
				result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event models.IncidentEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
					continue
				}

				w.processWebhookEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event models.IncidentEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"event_kind":     event.Kind,
		"event_incident": event.IncidentID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	attempt := 0
	err := retry.Retry(uint(w.cfg.WebhookMaxRetries), w.cfg.WebhookBaseDelay, func() error {
		attempt++
		if err := w.deliver(ctx, rawPayload); err != nil {
			log.WithError(err).Warnf("Webhook delivery attempt %d of %d failed", attempt, w.cfg.WebhookMaxRetries)
			return err
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Errorf("Failed to deliver webhook for event after %d retries.", w.cfg.WebhookMaxRetries)
		return
	}
	log.Info("Webhook delivered successfully.")
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
