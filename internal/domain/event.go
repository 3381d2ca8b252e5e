package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PendingRecord is a stored record waiting to be published. Commit marks it
// as synced in the store once the sink has accepted it.
type PendingRecord struct {
	Record Record
	Commit func(ctx context.Context) error
}

// RecordEvent is the JSON document published for each synced record.
type RecordEvent struct {
	Record
	Severity  Severity  `json:"severity"`
	Label     string    `json:"severity_label,omitempty"`
	Computed  bool      `json:"whz_computed"`
	Published time.Time `json:"published_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// SerializeRecord builds the sink message for a record. Severity comes from
// a fresh evaluation when possible, otherwise from the stored WHZ.
func SerializeRecord(rec Record) (OutputEvent, error) {
	res, err := Evaluate(rec.Measurement())
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize record %s: %w", rec.Taratassi, err)
	}
	computed := res.Determinate()
	if !computed && rec.WHZ != nil {
		res = Result{ZScore: *rec.WHZ, Severity: Classify(*rec.WHZ)}
	}

	ev := RecordEvent{
		Record:    rec,
		Severity:  res.Severity,
		Label:     res.Severity.Label(),
		Computed:  computed,
		Published: Now(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize record %s: %w", rec.Taratassi, err)
	}

	return OutputEvent{
		Key:   []byte(rec.Taratassi),
		Value: data,
		Headers: map[string]string{
			"village":      rec.Village,
			"severity":     string(res.Severity),
			"published_at": ev.Published.Format(time.RFC3339),
		},
	}, nil
}
