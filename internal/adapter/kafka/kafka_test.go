package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written [][]kafkago.Message
	err     error
	calls   int
	closed  bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, msgs)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToMessage(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	event := domain.OutputEvent{
		Key:   []byte("AMP-0042"),
		Value: []byte(`{"taratassi":"AMP-0042"}`),
		Headers: map[string]string{
			"village":      domain.VillageBefandefa,
			"severity":     string(domain.SeverityModerate),
			"published_at": now.Format(time.RFC3339),
		},
	}

	msg := toMessage(event)

	assert.Equal(t, []byte("AMP-0042"), msg.Key)
	assert.JSONEq(t, `{"taratassi":"AMP-0042"}`, string(msg.Value))
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "published_at", msg.Headers[0].Key)
	assert.Equal(t, []byte("2025-03-14T09:30:00Z"), msg.Headers[0].Value)
	assert.Equal(t, "severity", msg.Headers[1].Key)
	assert.Equal(t, []byte("moderate_malnutrition"), msg.Headers[1].Value)
	assert.Equal(t, "village", msg.Headers[2].Key)
}

func TestWriter_LoadBatch(t *testing.T) {
	fw := &fakeWriter{}
	w := newWriter(fw, testLogger())

	require.NoError(t, w.LoadBatch(context.Background(), nil))
	assert.Zero(t, fw.calls, "empty batch is not written")

	events := []domain.OutputEvent{
		{Key: []byte("AMP-1"), Value: []byte(`{}`)},
		{Key: []byte("AMP-2"), Value: []byte(`{}`)},
	}
	require.NoError(t, w.LoadBatch(context.Background(), events))
	require.Len(t, fw.written, 1)
	assert.Len(t, fw.written[0], 2)
	assert.NoError(t, w.CheckReadiness(context.Background()))

	require.NoError(t, w.Close())
	assert.True(t, fw.closed)
}

func TestWriter_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker unreachable")}
	w := newWriter(fw, testLogger())
	events := []domain.OutputEvent{{Key: []byte("AMP-1"), Value: []byte(`{}`)}}

	for range breakerFailures {
		err := w.LoadBatch(context.Background(), events)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker unreachable")
	}
	require.ErrorIs(t, w.CheckReadiness(context.Background()), gobreaker.ErrOpenState)

	err := w.LoadBatch(context.Background(), events)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, breakerFailures, fw.calls, "open breaker fails fast")
}
