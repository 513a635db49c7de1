package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentEventPublisher struct {
	writer *kafka.Writer
}

func NewPaymentEventPublisher(brokers []string, topic string) *PaymentEventPublisher {
	return &PaymentEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish keys messages by reference so events for one payment attempt stay
// ordered within a partition.
func (k *PaymentEventPublisher) Publish(event PaymentEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Reference),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *PaymentEventPublisher) Close() error {
	return k.writer.Close()
}
