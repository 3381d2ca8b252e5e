// Package form holds the data-entry state for one subject and keeps the
// displayed WHZ in step with it: every change to sex, either age, height or
// weight re-runs the engine and pushes the outcome to a Sink.
package form

import (
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
)

// Display is what the sink renders next to the WHZ field. When Stored is
// true the score came from the saved record because the current inputs are
// not computable.
type Display struct {
	Result domain.Result
	Stored bool
}

// Empty reports whether there is nothing to show.
func (d Display) Empty() bool {
	return !d.Result.Determinate()
}

// Sink receives every recomputed display value.
type Sink interface {
	ShowWHZ(d Display)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Display)

func (f SinkFunc) ShowWHZ(d Display) { f(d) }

// Form is the in-memory state of the registry form. It is not safe for
// concurrent use; a form belongs to one operator session.
type Form struct {
	record  domain.Record
	current Display
	sink    Sink
	err     error
}

// New returns an empty form. A nil sink discards updates.
func New(sink Sink) *Form {
	if sink == nil {
		sink = SinkFunc(func(Display) {})
	}
	f := &Form{sink: sink}
	f.Clear()
	return f
}

// Clear resets every field and the displayed score.
func (f *Form) Clear() {
	f.record = domain.Record{}.Normalize()
	f.err = nil
	f.show(Display{})
}

func (f *Form) SetSex(s domain.Sex) {
	f.record.Sex = s
	f.recompute()
}

func (f *Form) SetDeclaredAge(months int) {
	f.record.DeclaredAge = months
	f.recompute()
}

func (f *Form) SetEstimatedAge(months int) {
	f.record.EstimatedAge = months
	f.recompute()
}

func (f *Form) SetHeight(cm float64) {
	f.record.Height = domain.Float(cm)
	f.recompute()
}

func (f *Form) SetWeight(kg float64) {
	f.record.Weight = domain.Float(kg)
	f.recompute()
}

// SetDetails copies the fields that do not affect the WHZ: taratassi,
// village, consents, MUAC and the checklist answers.
func (f *Form) SetDetails(r domain.Record) {
	f.record.Taratassi = r.Taratassi
	f.record.Village = r.Village
	f.record.Consent = r.Consent
	f.record.Witnessed = r.Witnessed
	f.record.MUAC = r.MUAC
	f.record.Q1, f.record.Q2, f.record.Q3, f.record.Q4, f.record.Q5 = r.Q1, r.Q2, r.Q3, r.Q4, r.Q5
	f.record.CreatedAt = r.CreatedAt
}

// Load fills the form from a stored record. The score is recomputed from
// the inputs; only when that is indeterminate is the stored score shown.
func (f *Form) Load(r domain.Record) {
	f.record = r.Normalize()
	f.record.WHZ = nil
	if f.evaluate() {
		f.show(f.current)
		return
	}
	if r.WHZ != nil && f.err == nil {
		z := *r.WHZ
		f.show(Display{Result: domain.Result{ZScore: z, Severity: domain.Classify(z)}, Stored: true})
		return
	}
	f.show(Display{})
}

// Current is the value last pushed to the sink.
func (f *Form) Current() Display { return f.current }

// Err is the contract violation raised by the last recompute, if any.
func (f *Form) Err() error { return f.err }

// Record recomputes the score and returns the form contents as a record
// ready for validation. The WHZ field carries the displayed score.
func (f *Form) Record() domain.Record {
	if !f.current.Stored {
		f.recompute()
	}
	rec := f.record.Normalize()
	rec.WHZ = nil
	if !f.current.Empty() {
		rec.WHZ = domain.Float(f.current.Result.ZScore)
	}
	return rec
}

func (f *Form) recompute() {
	f.evaluate()
	f.show(f.current)
}

// evaluate stores the fresh result in current and reports whether it is
// determinate.
func (f *Form) evaluate() bool {
	res, err := domain.Evaluate(f.record.Measurement())
	f.err = err
	f.current = Display{Result: res}
	return res.Determinate()
}

func (f *Form) show(d Display) {
	f.current = d
	f.sink.ShowWHZ(d)
}
