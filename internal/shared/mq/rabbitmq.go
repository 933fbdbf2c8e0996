package mq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ wraps one connection and channel.
type RabbitMQ struct {
	url    string
	conn   *amqp.Connection
	ch     *amqp.Channel
	log    *logger.Logger
	mu     sync.RWMutex
	closed bool
}

// NewRabbitMQ dials the broker with retry: up to 10 attempts, backoff
// growing 1.5x capped at 30s.
func NewRabbitMQ(ctx context.Context, cfg config.MQConfig, log *logger.Logger) (*RabbitMQ, error) {
	mq := &RabbitMQ{
		url: cfg.AMQPURL(),
		log: log,
	}

	maxRetries := 10
	retryDelay := 1 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Info(logger.Entry{
			Action:  "rabbitmq_connection_attempt",
			Message: fmt.Sprintf("attempt %d/%d", attempt, maxRetries),
			Additional: map[string]any{
				"host": cfg.Host,
				"port": cfg.Port,
			},
		})

		if err := mq.connect(); err != nil {
			log.Warn(logger.Entry{
				Action:  "rabbitmq_connection_attempt_failed",
				Message: err.Error(),
				Additional: map[string]any{
					"attempt":      attempt,
					"retry_in_sec": retryDelay.Seconds(),
				},
			})

			if attempt == maxRetries {
				return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, err)
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
				retryDelay = time.Duration(float64(retryDelay) * 1.5)
				if retryDelay > 30*time.Second {
					retryDelay = 30 * time.Second
				}
			}
			continue
		}

		log.Info(logger.Entry{
			Action:  "rabbitmq_connected",
			Message: fmt.Sprintf("connected to %s:%d", cfg.Host, cfg.Port),
		})
		return mq, nil
	}

	return nil, fmt.Errorf("unexpected error: retry loop completed without success")
}

func (mq *RabbitMQ) connect() error {
	conn, err := amqp.Dial(mq.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := ch.Qos(10, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("set qos: %w", err)
	}

	mq.mu.Lock()
	mq.conn = conn
	mq.ch = ch
	mq.mu.Unlock()

	return nil
}

// DeclareQueue ensures a durable queue exists.
func (mq *RabbitMQ) DeclareQueue(name string) error {
	mq.mu.RLock()
	ch := mq.ch
	mq.mu.RUnlock()

	if ch == nil {
		return fmt.Errorf("rabbitmq channel not available")
	}

	_, err := ch.QueueDeclare(name, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	return nil
}

// Consume reads deliveries from queue until ctx ends. Acks are left to the
// handler.
func (mq *RabbitMQ) Consume(ctx context.Context, queue, consumer string, handler func(amqp.Delivery)) error {
	mq.mu.RLock()
	ch := mq.ch
	mq.mu.RUnlock()

	if ch == nil {
		return fmt.Errorf("rabbitmq channel not available")
	}

	msgs, err := ch.Consume(queue, consumer, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	mq.log.Info(logger.Entry{
		Action:  "consumer_started",
		Message: fmt.Sprintf("consuming from queue: %s", queue),
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					mq.log.Info(logger.Entry{
						Action:  "consumer_stopped",
						Message: queue,
					})
					return
				}
				handler(msg)
			}
		}
	}()

	return nil
}

// Close closes the channel and connection once.
func (mq *RabbitMQ) Close() {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	if mq.closed {
		return
	}
	mq.closed = true

	if mq.ch != nil {
		_ = mq.ch.Close()
	}
	if mq.conn != nil {
		_ = mq.conn.Close()
	}

	mq.log.Info(logger.Entry{Action: "rabbitmq_closed", Message: "connection closed"})
}
