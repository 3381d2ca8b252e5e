package registry_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type memStore struct {
	records map[string]domain.Record
	err     error
}

func newMemStore(recs ...domain.Record) *memStore {
	s := &memStore{records: map[string]domain.Record{}}
	for _, r := range recs {
		s.records[r.Taratassi] = r
	}
	return s
}

func (s *memStore) Create(_ context.Context, rec domain.Record) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.records[rec.Taratassi]; ok {
		return registry.ErrDuplicateTaratassi
	}
	s.records[rec.Taratassi] = rec
	return nil
}

func (s *memStore) Update(_ context.Context, rec domain.Record) error {
	if _, ok := s.records[rec.Taratassi]; !ok {
		return registry.ErrNotFound
	}
	s.records[rec.Taratassi] = rec
	return nil
}

func (s *memStore) Get(_ context.Context, taratassi string) (domain.Record, error) {
	rec, ok := s.records[domain.NormalizeTaratassi(taratassi)]
	if !ok {
		return domain.Record{}, registry.ErrNotFound
	}
	return rec, nil
}

func (s *memStore) List(_ context.Context, search string) ([]domain.Record, error) {
	var out []domain.Record
	for k, r := range s.records {
		if strings.Contains(k, search) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Taratassi < out[j].Taratassi })
	return out, nil
}

type lineExporter struct{}

func (lineExporter) Export(w io.Writer, records []domain.Record) error {
	for _, r := range records {
		if _, err := io.WriteString(w, r.Taratassi+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func newService(store registry.Store) (*registry.Service, *observability.Metrics) {
	m := observability.NewMetricsForTesting()
	return registry.NewService(store, lineExporter{}, slog.New(slog.NewTextHandler(io.Discard, nil)), m), m
}

// subject is complete and computes to -3.9 (boys 0-2, 75 cm, 7.0 kg).
func subject(taratassi string) domain.Record {
	return domain.Record{
		Taratassi:    taratassi,
		Village:      domain.VillageBefandefa,
		Consent:      true,
		Witnessed:    true,
		DeclaredAge:  12,
		EstimatedAge: 12,
		Sex:          domain.SexMale,
		MUAC:         domain.Float(11.0),
		Weight:       domain.Float(7.0),
		Height:       domain.Float(75.0),
		Q1:           domain.AnswerYes,
		Q2:           domain.AnswerNo,
		Q3:           domain.AnswerUnknown,
		Q4:           domain.AnswerNo,
		Q5:           domain.AnswerYes,
	}
}

// outOfRange has a height no reference table covers, with a stored score.
func outOfRange(taratassi string) domain.Record {
	rec := subject(taratassi)
	rec.Height = domain.Float(130.0)
	rec.Weight = domain.Float(20.0)
	rec.WHZ = domain.Float(-2.5)
	rec.CreatedAt = time.Date(2024, 11, 2, 8, 0, 0, 0, time.UTC)
	return rec
}

// --- tests ---

func TestService_Create(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	domain.SetClock(clock)
	t.Cleanup(func() { domain.SetClock(nil) })

	store := newMemStore()
	svc, metrics := newService(store)

	in := subject(" amp-1 ")
	in.WHZ = domain.Float(1.5) // ignored

	entry, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, entry.Record.WHZ)
	assert.Equal(t, -3.9, *entry.Record.WHZ)
	assert.Equal(t, "AMP-1", entry.Record.Taratassi)
	assert.Equal(t, clock.Now(), entry.Record.CreatedAt)
	assert.Equal(t, domain.SeveritySevere, entry.Assessment.Severity)
	assert.Equal(t, "Malnutrizione Severa", entry.Assessment.Label)
	assert.False(t, entry.Assessment.Stored)

	stored, ok := store.records["AMP-1"]
	require.True(t, ok)
	assert.Equal(t, -3.9, *stored.WHZ)

	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.RecordsSaved.WithLabelValues("create")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.WHZEvaluations.WithLabelValues("severe")), 0.0001)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.Record)
		field string
	}{
		{"missing taratassi", func(r *domain.Record) { r.Taratassi = "  " }, "taratassi"},
		{"no consent", func(r *domain.Record) { r.Consent = false }, "consent"},
		{"height out of range leaves whz empty", func(r *domain.Record) { r.Height = domain.Float(130) }, "whz"},
		{"unset sex", func(r *domain.Record) { r.Sex = domain.SexUnset }, "gender"},
		{"q5 does not accept unknown", func(r *domain.Record) { r.Q5 = domain.AnswerUnknown }, "q5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			svc, _ := newService(store)

			rec := subject("AMP-2")
			tt.edit(&rec)

			_, err := svc.Create(context.Background(), rec)
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, store.records)
		})
	}
}

func TestService_Create_Duplicate(t *testing.T) {
	svc, metrics := newService(newMemStore(subject("AMP-3")))

	_, err := svc.Create(context.Background(), subject("amp-3"))
	require.ErrorIs(t, err, registry.ErrDuplicateTaratassi)
	assert.Zero(t, testutil.ToFloat64(metrics.RecordsSaved.WithLabelValues("create")))
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newService(newMemStore())

	_, err := svc.Update(context.Background(), "AMP-404", subject("AMP-404"))
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestService_Update_RecomputesChangedMeasurements(t *testing.T) {
	existing := subject("AMP-4")
	existing.WHZ = domain.Float(-3.9)
	existing.CreatedAt = time.Date(2024, 11, 2, 8, 0, 0, 0, time.UTC)
	synced := existing.CreatedAt.Add(time.Hour)
	existing.SyncedAt = &synced
	store := newMemStore(existing)
	svc, metrics := newService(store)

	in := subject("ignored")
	in.Weight = domain.Float(8.0)

	entry, err := svc.Update(context.Background(), "amp-4", in)
	require.NoError(t, err)

	assert.Equal(t, "AMP-4", entry.Record.Taratassi)
	assert.Equal(t, -2.1, *entry.Record.WHZ)
	assert.Equal(t, domain.SeverityModerate, entry.Assessment.Severity)
	assert.Equal(t, existing.CreatedAt, entry.Record.CreatedAt)
	assert.Nil(t, entry.Record.SyncedAt)
	assert.Equal(t, -2.1, *store.records["AMP-4"].WHZ)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.RecordsSaved.WithLabelValues("update")), 0.0001)
}

func TestService_Update_KeepsStoredScoreForUnchangedInputs(t *testing.T) {
	store := newMemStore(outOfRange("AMP-5"))
	svc, _ := newService(store)

	in := outOfRange("AMP-5")
	in.WHZ = nil
	in.Q1 = domain.AnswerNo

	entry, err := svc.Update(context.Background(), "AMP-5", in)
	require.NoError(t, err)

	require.NotNil(t, entry.Record.WHZ)
	assert.Equal(t, -2.5, *entry.Record.WHZ)
	assert.True(t, entry.Assessment.Stored)
	assert.Equal(t, domain.AnswerNo, store.records["AMP-5"].Q1)
}

func TestService_Update_ChangedInputsDropStoredScore(t *testing.T) {
	store := newMemStore(outOfRange("AMP-6"))
	svc, _ := newService(store)

	in := outOfRange("AMP-6")
	in.Height = domain.Float(125.0)

	_, err := svc.Update(context.Background(), "AMP-6", in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "whz", verr.Field)
	assert.Equal(t, -2.5, *store.records["AMP-6"].WHZ, "store untouched")
}

func TestService_Get(t *testing.T) {
	fresh := subject("AMP-7")
	fresh.WHZ = domain.Float(0.4) // stale, replaced by the fresh score
	svc, _ := newService(newMemStore(fresh, outOfRange("AMP-8")))

	t.Run("fresh score wins", func(t *testing.T) {
		entry, err := svc.Get(context.Background(), "amp-7")
		require.NoError(t, err)
		assert.Equal(t, -3.9, *entry.Assessment.ZScore)
		assert.False(t, entry.Assessment.Stored)
	})

	t.Run("stored fallback", func(t *testing.T) {
		entry, err := svc.Get(context.Background(), "AMP-8")
		require.NoError(t, err)
		assert.Equal(t, -2.5, *entry.Assessment.ZScore)
		assert.True(t, entry.Assessment.Stored)
		assert.Equal(t, "cedb3b", entry.Assessment.Color)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "AMP-0")
		require.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestService_Evaluate(t *testing.T) {
	svc, metrics := newService(newMemStore())

	a, err := svc.Evaluate(domain.Measurement{Sex: domain.SexFemale, DeclaredAge: 20, EstimatedAge: 20, HeightCm: 85, WeightKg: 11.2})
	require.NoError(t, err)
	require.NotNil(t, a.ZScore)
	assert.Equal(t, 0.0, *a.ZScore)
	assert.Equal(t, domain.SeverityNone, a.Severity)

	a, err = svc.Evaluate(domain.Measurement{Sex: domain.SexUnset, HeightCm: 85, WeightKg: 11.2})
	require.NoError(t, err)
	assert.Nil(t, a.ZScore)
	assert.Equal(t, domain.SeverityIndeterminate, a.Severity)

	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.WHZEvaluations.WithLabelValues("indeterminate")), 0.0001)
}

func TestService_ListAndExport(t *testing.T) {
	svc, _ := newService(newMemStore(subject("AMP-10"), subject("AMP-11"), subject("XYZ-1")))

	list, err := svc.List(context.Background(), "AMP")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "AMP-10\nAMP-11\nXYZ-1\n", buf.String())
}
