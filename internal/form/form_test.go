package form_test

import (
	"testing"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps every value pushed by the form.
type recordingSink struct {
	shown []form.Display
}

func (s *recordingSink) ShowWHZ(d form.Display) { s.shown = append(s.shown, d) }

func (s *recordingSink) last() form.Display { return s.shown[len(s.shown)-1] }

func fillInputs(f *form.Form) {
	f.SetSex(domain.SexMale)
	f.SetDeclaredAge(12)
	f.SetEstimatedAge(12)
	f.SetHeight(75.0)
	f.SetWeight(7.0)
}

func TestForm_RecomputesOnEveryInput(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)
	require.Len(t, sink.shown, 1, "clear pushes an empty display")

	fillInputs(f)

	// one push per setter, plus the initial clear
	require.Len(t, sink.shown, 6)
	for _, d := range sink.shown[:5] {
		assert.True(t, d.Empty(), "inputs are incomplete until weight is set")
	}

	got := sink.last()
	assert.False(t, got.Empty())
	assert.False(t, got.Stored)
	assert.Equal(t, -3.9, got.Result.ZScore)
	assert.Equal(t, domain.SeveritySevere, got.Result.Severity)
	assert.Equal(t, got, f.Current())
}

func TestForm_ChangeInvalidatesScore(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)
	fillInputs(f)
	require.False(t, sink.last().Empty())

	f.SetSex(domain.SexUnset)
	assert.True(t, sink.last().Empty())

	f.SetSex(domain.SexMale)
	f.SetHeight(0)
	assert.True(t, sink.last().Empty())

	f.SetHeight(75.0)
	f.SetWeight(8.0)
	assert.Equal(t, -2.1, sink.last().Result.ZScore)
	assert.Equal(t, domain.SeverityModerate, sink.last().Result.Severity)
}

func TestForm_LoadPrefersFreshScore(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)

	f.Load(domain.Record{
		Taratassi:    "amp-1",
		Sex:          domain.SexFemale,
		DeclaredAge:  20,
		EstimatedAge: 20,
		Height:       domain.Float(85.0),
		Weight:       domain.Float(11.2),
		WHZ:          domain.Float(-2.5),
	})

	got := sink.last()
	assert.False(t, got.Stored)
	assert.Equal(t, 0.0, got.Result.ZScore)
	assert.Equal(t, domain.SeverityNone, got.Result.Severity)
}

func TestForm_LoadFallsBackToStoredScore(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)

	f.Load(domain.Record{
		Taratassi:    "amp-2",
		Sex:          domain.SexFemale,
		DeclaredAge:  20,
		EstimatedAge: 20,
		Height:       domain.Float(130.0),
		Weight:       domain.Float(20),
		WHZ:          domain.Float(-2.5),
	})

	got := sink.last()
	assert.True(t, got.Stored)
	assert.Equal(t, -2.5, got.Result.ZScore)
	assert.Equal(t, domain.SeverityModerate, got.Result.Severity)

	rec := f.Record()
	require.NotNil(t, rec.WHZ)
	assert.Equal(t, -2.5, *rec.WHZ)
	assert.Equal(t, "AMP-2", rec.Taratassi)

	// editing an input replaces the stored score
	f.SetHeight(85.0)
	f.SetWeight(11.2)
	assert.False(t, sink.last().Stored)
	assert.Equal(t, 0.0, sink.last().Result.ZScore)
}

func TestForm_LoadWithoutAnyScore(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)

	f.Load(domain.Record{Taratassi: "amp-3"})

	assert.True(t, sink.last().Empty())
	assert.Nil(t, f.Record().WHZ)
}

func TestForm_RecordCarriesDetails(t *testing.T) {
	f := form.New(nil)
	fillInputs(f)
	f.SetDetails(domain.Record{
		Taratassi: " amp-9 ",
		Village:   domain.VillageBefandefa,
		Consent:   true,
		Witnessed: true,
		MUAC:      domain.Float(11.5),
		Q1:        domain.AnswerYes,
		Q2:        domain.AnswerNo,
		Q3:        domain.AnswerNo,
		Q4:        domain.AnswerUnknown,
		Q5:        domain.AnswerYes,
	})

	rec := f.Record()
	assert.Equal(t, "AMP-9", rec.Taratassi)
	assert.Equal(t, domain.VillageBefandefa, rec.Village)
	require.NotNil(t, rec.WHZ)
	assert.Equal(t, -3.9, *rec.WHZ)
	require.NoError(t, rec.Validate(true))
}

func TestForm_Clear(t *testing.T) {
	sink := &recordingSink{}
	f := form.New(sink)
	fillInputs(f)

	f.Clear()

	assert.True(t, sink.last().Empty())
	rec := f.Record()
	assert.Equal(t, domain.SexUnset, rec.Sex)
	assert.Nil(t, rec.Weight)
	assert.Nil(t, rec.WHZ)
}
