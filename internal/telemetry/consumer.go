package telemetry

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/mq"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer ingests telemetry reports from a RabbitMQ queue.
type Consumer struct {
	broker *mq.RabbitMQ
	store  storage.Store
	queue  string
	log    *logger.Logger
}

func NewConsumer(broker *mq.RabbitMQ, store storage.Store, queue string, log *logger.Logger) *Consumer {
	return &Consumer{broker: broker, store: store, queue: queue, log: log}
}

// Start declares the queue and consumes until ctx ends. Malformed messages
// are rejected without requeue; reports for unknown taxis are acked and
// dropped, since redelivery cannot fix them either.
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.broker.DeclareQueue(c.queue); err != nil {
		return err
	}
	return c.broker.Consume(ctx, c.queue, "savezar-telemetry", func(d amqp.Delivery) {
		c.handle(ctx, d)
	})
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var report Report
	if err := json.Unmarshal(d.Body, &report); err != nil {
		c.log.Warn(logger.Entry{
			Action:  "telemetry_bad_message",
			Message: err.Error(),
		})
		_ = d.Nack(false, false)
		return
	}

	updated, err := Apply(ctx, c.store, report)
	if err != nil {
		var ve *fleet.ValidationError
		if errors.Is(err, fleet.ErrNotFound) || errors.As(err, &ve) {
			c.log.Warn(logger.Entry{
				Action:  "telemetry_dropped",
				Message: err.Error(),
				TaxiID:  report.TaxiID,
			})
			_ = d.Ack(false)
			return
		}
		c.log.Error(logger.Entry{
			Action:  "telemetry_apply_failed",
			Message: err.Error(),
			TaxiID:  report.TaxiID,
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		_ = d.Nack(false, true)
		return
	}

	c.log.Debug(logger.Entry{
		Action:  "telemetry_applied",
		Message: "stats snapshot updated",
		TaxiID:  updated.TaxiID,
	})
	_ = d.Ack(false)
}
