package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/models"
)

// Producer publishes checkout telemetry events.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer builds a producer for the given brokers (comma separated) and
// topic.
func NewProducer(brokers, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

func (p *Producer) SendCheckoutEvent(event models.CheckoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	}

	err = p.writer.WriteMessages(context.Background(), msg)
	if err != nil {
		zap.L().Error("Failed to write checkout event", zap.String("topic", p.topic), zap.Error(err))
	}
	return err
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
