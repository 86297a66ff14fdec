//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/bren-perry/iw-generator/internal/adapter/kafka"
	"github.com/bren-perry/iw-generator/internal/composer"
	"github.com/bren-perry/iw-generator/internal/config"
	"github.com/bren-perry/iw-generator/internal/domain"
	"github.com/bren-perry/iw-generator/internal/observability"
)

const testSinkTopic = "test-composed-notifications"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", fmt.Sprintf("%s:%d", controller.Host, controller.Port))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// publishedNotification holds a deserialized message read from the sink topic.
type publishedNotification struct {
	Notification domain.Notification
	Key          string
	Headers      map[string]string
}

// readPublished reads a single message from the sink consumer and deserializes it.
func readPublished(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedNotification {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var n domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &n), "unmarshal sink message")

	return publishedNotification{
		Notification: n,
		Key:          string(msg.Key),
		Headers:      headers,
	}
}

// TestComposeAndPublish wires the composer to a real Kafka broker and
// verifies that a composed notification round-trips through the sink topic
// with its key and headers intact.
func TestComposeAndPublish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaEnabled:   true,
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
	}

	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	c := composer.New(writer, "ON", discardLogger(), observability.NewMetricsForTesting())

	composed := c.Compose(ctx, domain.Request{
		Mode:                  domain.ModeStorm,
		Province:              "ON",
		Hazards:               domain.Selection{Tornado: domain.TornadoDamaging},
		MajorPopulationInPath: true,
		Location:              "Barrie",
	})

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	pn := readPublished(ctx, t, consumer)

	assert.Equal(t, composed.ID, pn.Key)
	assert.Equal(t, "storm", pn.Headers["mode"])
	assert.Equal(t, "4", pn.Headers["severity"])
	_, err := time.Parse(time.RFC3339, pn.Headers["issued_at"])
	assert.NoError(t, err, "issued_at should be valid RFC3339")

	assert.Equal(t, composed.Headline, pn.Notification.Headline)
	assert.Equal(t, 4, pn.Notification.Severity)
	assert.Contains(t, pn.Notification.Headline, "DAMAGING TORNADO REPORTED")
	assert.Contains(t, pn.Notification.Description, "Barrie")
}
