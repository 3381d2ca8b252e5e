// Package registry is the record service behind the CLI and the HTTP API.
// Every save goes through a form so the WHZ is recomputed from the inputs
// before the record is validated and written.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/form"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
)

var (
	// ErrNotFound means no record has the requested taratassi.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateTaratassi means a record with the taratassi already exists.
	ErrDuplicateTaratassi = errors.New("taratassi already registered")
)

// Store persists records.
type Store interface {
	Create(ctx context.Context, rec domain.Record) error
	Update(ctx context.Context, rec domain.Record) error
	Get(ctx context.Context, taratassi string) (domain.Record, error)
	List(ctx context.Context, search string) ([]domain.Record, error)
}

// Exporter renders records to a file format.
type Exporter interface {
	Export(w io.Writer, records []domain.Record) error
}

// Assessment is the displayed WHZ for a record or a measurement.
type Assessment struct {
	ZScore   *float64        `json:"whz"`
	Severity domain.Severity `json:"severity"`
	Label    string          `json:"label,omitempty"`
	Color    string          `json:"color,omitempty"`
	Stored   bool            `json:"stored"`
}

// NewAssessment converts a form display value.
func NewAssessment(d form.Display) Assessment {
	if d.Empty() {
		return Assessment{}
	}
	z := d.Result.ZScore
	return Assessment{
		ZScore:   &z,
		Severity: d.Result.Severity,
		Label:    d.Result.Severity.Label(),
		Color:    d.Result.Severity.Color(),
		Stored:   d.Stored,
	}
}

// Entry is a stored record with its current assessment.
type Entry struct {
	Record     domain.Record `json:"record"`
	Assessment Assessment    `json:"assessment"`
}

// Service implements the record operations.
type Service struct {
	store    Store
	exporter Exporter
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewService wires a Service.
func NewService(store Store, exporter Exporter, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		store:    store,
		exporter: exporter,
		logger:   logger,
		metrics:  metrics,
	}
}

// Evaluate computes the WHZ for a bare measurement.
func (s *Service) Evaluate(m domain.Measurement) (Assessment, error) {
	res, err := domain.Evaluate(m)
	s.metrics.ObserveWHZ(res, err)
	if err != nil {
		return Assessment{}, err
	}
	return NewAssessment(form.Display{Result: res}), nil
}

// Create recomputes the WHZ, validates and inserts a new record. A WHZ
// supplied by the caller is ignored.
func (s *Service) Create(ctx context.Context, rec domain.Record) (Entry, error) {
	f := form.New(nil)
	rec.WHZ = nil
	rec.SyncedAt = nil
	rec.CreatedAt = domain.Now().Truncate(time.Second)
	f.Load(rec)

	out, err := s.save(f, true)
	if err != nil {
		return Entry{}, err
	}
	if err := s.store.Create(ctx, out); err != nil {
		return Entry{}, err
	}

	s.metrics.RecordsSaved.WithLabelValues("create").Inc()
	s.logger.Info("record created", "taratassi", out.Taratassi, "severity", f.Current().Result.Severity)
	return Entry{Record: out, Assessment: NewAssessment(f.Current())}, nil
}

// Update replaces the record stored under taratassi. The stored WHZ is kept
// as a fallback only while the measurements are unchanged and not
// computable.
func (s *Service) Update(ctx context.Context, taratassi string, rec domain.Record) (Entry, error) {
	key := domain.NormalizeTaratassi(taratassi)
	existing, err := s.store.Get(ctx, key)
	if err != nil {
		return Entry{}, err
	}

	f := form.New(nil)
	f.Load(existing)
	if rec.Normalize().Measurement() != existing.Measurement() {
		f.SetSex(rec.Sex)
		f.SetDeclaredAge(rec.DeclaredAge)
		f.SetEstimatedAge(rec.EstimatedAge)
		f.SetHeight(deref(rec.Height))
		f.SetWeight(deref(rec.Weight))
	}
	rec.Taratassi = key
	rec.CreatedAt = existing.CreatedAt
	f.SetDetails(rec)

	out, err := s.save(f, false)
	if err != nil {
		return Entry{}, err
	}
	out.SyncedAt = nil
	if err := s.store.Update(ctx, out); err != nil {
		return Entry{}, err
	}

	s.metrics.RecordsSaved.WithLabelValues("update").Inc()
	s.logger.Info("record updated", "taratassi", key, "severity", f.Current().Result.Severity)
	return Entry{Record: out, Assessment: NewAssessment(f.Current())}, nil
}

// save reads the record off the form after a forced recompute and validates it.
func (s *Service) save(f *form.Form, requireTaratassi bool) (domain.Record, error) {
	out := f.Record()
	s.metrics.ObserveWHZ(f.Current().Result, f.Err())
	if err := f.Err(); err != nil {
		return domain.Record{}, fmt.Errorf("compute whz for %s: %w", out.Taratassi, err)
	}
	if err := out.Validate(requireTaratassi); err != nil {
		return domain.Record{}, err
	}
	return out, nil
}

// Get loads a record and its assessment: a fresh score when the inputs are
// computable, otherwise the stored one.
func (s *Service) Get(ctx context.Context, taratassi string) (Entry, error) {
	rec, err := s.store.Get(ctx, taratassi)
	if err != nil {
		return Entry{}, err
	}
	f := form.New(nil)
	f.Load(rec)
	return Entry{Record: rec, Assessment: NewAssessment(f.Current())}, nil
}

// List returns records whose taratassi contains search, newest first.
func (s *Service) List(ctx context.Context, search string) ([]domain.Record, error) {
	return s.store.List(ctx, search)
}

// Export writes the records matching search to w.
func (s *Service) Export(ctx context.Context, w io.Writer, search string) (int, error) {
	records, err := s.store.List(ctx, search)
	if err != nil {
		return 0, err
	}
	if err := s.exporter.Export(w, records); err != nil {
		return 0, err
	}
	s.logger.Info("records exported", "count", len(records))
	return len(records), nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
