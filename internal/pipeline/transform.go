package pipeline

import (
	"context"
	"log/slog"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
)

// RecordTransformer implements Transformer by re-evaluating the record and
// serializing it as a sync event.
type RecordTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a RecordTransformer.
func NewTransformer(logger *slog.Logger) *RecordTransformer {
	return &RecordTransformer{logger: logger}
}

func (t *RecordTransformer) Transform(_ context.Context, rec domain.Record) (domain.OutputEvent, error) {
	out, err := domain.SerializeRecord(rec)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.logger.Debug("record serialized", "taratassi", rec.Taratassi, "severity", out.Headers["severity"])
	return out, nil
}
