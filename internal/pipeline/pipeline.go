package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
)

// BatchExtractor reads up to batchSize unsynced records from the store.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.PendingRecord, error)
}

// Transformer converts a record into an output event.
type Transformer interface {
	Transform(ctx context.Context, rec domain.Record) (domain.OutputEvent, error)
}

// BatchLoader writes multiple output events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline orchestrates the extract-transform-load loop that publishes
// saved records.
type Pipeline struct {
	extractor    BatchExtractor
	transformer  Transformer
	loader       BatchLoader
	logger       *slog.Logger
	metrics      *observability.Metrics
	batchSize    int
	pollInterval time.Duration
	retry        *backoff.ExponentialBackOff
}

// New creates a Pipeline with the given stages and observability.
// pollInterval is how long Run waits when no record is pending.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int, pollInterval time.Duration) *Pipeline {
	return &Pipeline{
		extractor:    e,
		transformer:  t,
		loader:       l,
		logger:       logger,
		metrics:      metrics,
		batchSize:    batchSize,
		pollInterval: pollInterval,
		retry:        newRetry(),
	}
}

// newRetry starts at 200ms, doubles each retry and caps at 5s. It never
// gives up; Run stops only on context cancellation.
func newRetry() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Run executes the batch loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("sync pipeline started", "batch_size", p.batchSize, "poll_interval", p.pollInterval)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sync pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		n, ok := p.processBatch(ctx)
		if !ok {
			return nil
		}
		if n == 0 && !sharedretry.SleepWithContext(ctx, p.pollInterval) {
			return nil
		}
	}
}

// Drain publishes pending records until a batch yields nothing and returns
// how many were loaded. Errors, including records that could not be marked
// synced, stop the drain instead of being retried.
func (p *Pipeline) Drain(ctx context.Context) (int, error) {
	total := 0
	for {
		batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
		if err != nil {
			return total, err
		}
		if len(batch) == 0 {
			return total, nil
		}
		p.metrics.MessagesConsumed.Add(float64(len(batch)))

		outBatch, loadedRecs, skipped := p.transformBatch(ctx, batch)
		if err := p.commitAll(ctx, skipped); err != nil {
			return total, err
		}
		if len(outBatch) == 0 {
			continue
		}
		if err := p.loader.LoadBatch(ctx, outBatch); err != nil {
			return total, err
		}
		p.metrics.MessagesProduced.Add(float64(len(outBatch)))
		total += len(outBatch)
		if err := p.commitAll(ctx, loadedRecs); err != nil {
			return total, err
		}
	}
}

// processBatch runs one extract-transform-load cycle. It returns the
// number of events loaded and false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context) (int, bool) {
	start := time.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return 0, false
		}
		p.logger.Error("extract batch failed", "error", err)
		return 0, p.backoffOrStop(ctx)
	}

	if len(batch) == 0 {
		return 0, ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))
	p.retry.Reset()

	loaded, ok := p.transformAndLoad(ctx, batch)
	if !ok {
		return 0, false
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	}
	return loaded, true
}

// transformAndLoad serializes each record in the batch, loads the
// successes, and marks them synced.
func (p *Pipeline) transformAndLoad(ctx context.Context, batch []domain.PendingRecord) (int, bool) {
	outBatch, loadedRecs, skipped := p.transformBatch(ctx, batch)
	// commit failures leave records pending; the next poll retries them
	_ = p.commitAll(ctx, skipped)
	if len(outBatch) == 0 {
		return 0, true
	}

	if err := p.loader.LoadBatch(ctx, outBatch); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(outBatch))
		return 0, p.backoffOrStop(ctx)
	}

	p.metrics.MessagesProduced.Add(float64(len(outBatch)))
	_ = p.commitAll(ctx, loadedRecs)
	return len(outBatch), true
}

// transformBatch serializes the batch. Records that cannot be serialized
// are returned as skipped; the caller commits them so they do not hold back
// the queue, and a later edit clears their sync mark.
func (p *Pipeline) transformBatch(ctx context.Context, batch []domain.PendingRecord) (out []domain.OutputEvent, loaded, skipped []domain.PendingRecord) {
	out = make([]domain.OutputEvent, 0, len(batch))
	loaded = make([]domain.PendingRecord, 0, len(batch))

	for _, pending := range batch {
		ev, err := p.transformer.Transform(ctx, pending.Record)
		if err != nil {
			p.logger.Warn("transform failed, skipping record",
				"error", err,
				"taratassi", pending.Record.Taratassi,
			)
			p.metrics.SyncErrors.Inc()
			skipped = append(skipped, pending)
			continue
		}
		out = append(out, ev)
		loaded = append(loaded, pending)
	}
	return out, loaded, skipped
}

// backoffOrStop sleeps for the next retry interval. Returns false if the
// pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return sharedretry.SleepWithContext(ctx, p.retry.NextBackOff())
}

// commitAll marks every record synced and joins the failures.
func (p *Pipeline) commitAll(ctx context.Context, recs []domain.PendingRecord) error {
	var errs []error
	for _, pending := range recs {
		if err := p.commit(ctx, pending); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// commit marks the record synced if a commit function is available.
func (p *Pipeline) commit(ctx context.Context, pending domain.PendingRecord) error {
	if pending.Commit == nil {
		return nil
	}
	if err := pending.Commit(ctx); err != nil {
		p.logger.Warn("mark synced failed", "error", err, "taratassi", pending.Record.Taratassi)
		p.metrics.SyncErrors.Inc()
		return fmt.Errorf("mark %s synced: %w", pending.Record.Taratassi, err)
	}
	return nil
}
