package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/bren-perry/iw-generator/internal/config"
	"github.com/bren-perry/iw-generator/internal/domain"
)

// Writer produces composed notifications to a Kafka topic.
// It implements composer.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes one notification to the sink topic.
func (w *Writer) Publish(ctx context.Context, n domain.Notification) error {
	msg, err := serializeToMessage(n)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a notification into a Kafka message, keyed by
// notification ID with mode and severity headers for downstream routing.
func serializeToMessage(n domain.Notification) (kafkago.Message, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize notification: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(n.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "mode", Value: []byte(n.Mode)},
			{Key: "severity", Value: []byte(strconv.Itoa(n.Severity))},
			{Key: "issued_at", Value: []byte(n.IssuedAt.Format(time.RFC3339))},
		},
	}, nil
}
