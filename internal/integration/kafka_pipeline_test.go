//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	kafkaadapter "github.com/lcarotenuto/questionario-ampasilava/internal/adapter/kafka"
	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/sqlite"
	"github.com/lcarotenuto/questionario-ampasilava/internal/config"
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
	"github.com/lcarotenuto/questionario-ampasilava/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "test-survey-records"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("questionario-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

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
	cc, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer cc.Close()

	require.NoError(t, cc.CreateTopics(kafkago.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}))
}

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "sync.sqlite3"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func surveyRecord(taratassi string, height, weight *float64, at time.Time) domain.Record {
	return domain.Record{
		Taratassi:    taratassi,
		Village:      domain.VillageAndavadoaka,
		Consent:      true,
		Witnessed:    true,
		DeclaredAge:  12,
		EstimatedAge: 12,
		Sex:          domain.SexMale,
		MUAC:         domain.Float(12.0),
		Weight:       weight,
		Height:       height,
		Q1:           domain.AnswerNo,
		Q2:           domain.AnswerNo,
		Q3:           domain.AnswerNo,
		Q4:           domain.AnswerNo,
		Q5:           domain.AnswerNo,
		CreatedAt:    at,
	}
}

type published struct {
	Event   domain.RecordEvent
	Key     string
	Headers map[string]string
}

func readPublished(ctx context.Context, t *testing.T, consumer *kafkago.Reader) published {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var ev domain.RecordEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev), "unmarshal record event")
	return published{Event: ev, Key: string(msg.Key), Headers: headers}
}

func newConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// TestDrainPublishesPendingRecords syncs every stored record once and checks
// that the outbox is empty afterwards.
func TestDrainPublishesPendingRecords(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	store := openStore(t)
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Create(ctx, surveyRecord("AMP-1", domain.Float(75), domain.Float(7.0), base)))
	require.NoError(t, store.Create(ctx, surveyRecord("AMP-2", domain.Float(75), domain.Float(8.0), base.Add(time.Minute))))
	require.NoError(t, store.Create(ctx, surveyRecord("AMP-3", nil, domain.Float(8.0), base.Add(2*time.Minute))))

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(store, pipeline.NewTransformer(discardLogger()), writer, discardLogger(),
		observability.NewMetricsForTesting(), 2, time.Second)

	n, err := p.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	consumer := newConsumer(t, broker)
	got := map[string]published{}
	for len(got) < 3 {
		msg := readPublished(ctx, t, consumer)
		got[msg.Key] = msg
	}

	assert.Equal(t, string(domain.SeveritySevere), got["AMP-1"].Headers["severity"])
	assert.True(t, got["AMP-1"].Event.Computed)
	assert.Equal(t, domain.SeverityModerate, got["AMP-2"].Event.Severity)
	assert.Equal(t, "", got["AMP-3"].Headers["severity"])
	assert.False(t, got["AMP-3"].Event.Computed)
	for key, msg := range got {
		assert.Equal(t, domain.VillageAndavadoaka, msg.Headers["village"], key)
		_, err := time.Parse(time.RFC3339, msg.Headers["published_at"])
		assert.NoError(t, err, "published_at should be RFC3339")
	}

	pending, err := store.ExtractBatch(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "every record should be marked synced")
}

// TestRunPublishesEditedRecordAgain checks that an update clears the synced
// mark so the running pipeline republishes the record.
func TestRunPublishesEditedRecordAgain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	store := openStore(t)
	rec := surveyRecord("AMP-9", domain.Float(75), domain.Float(7.0), time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, rec))

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(store, pipeline.NewTransformer(discardLogger()), writer, discardLogger(),
		observability.NewMetricsForTesting(), 10, 200*time.Millisecond)

	runCtx, runCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(runCtx) }()

	consumer := newConsumer(t, broker)
	first := readPublished(ctx, t, consumer)
	assert.Equal(t, "AMP-9", first.Key)
	assert.Equal(t, domain.SeveritySevere, first.Event.Severity)

	rec.Weight = domain.Float(8.0)
	require.NoError(t, store.Update(ctx, rec))

	second := readPublished(ctx, t, consumer)
	assert.Equal(t, "AMP-9", second.Key)
	assert.Equal(t, domain.SeverityModerate, second.Event.Severity)

	runCancel()
	require.NoError(t, <-errCh)
}
