package domain

import (
	"fmt"
	"math"
)

// Sex is the subject's sex as recorded on the form. The string values are
// the labels stored in the registry.
type Sex string

const (
	SexUnset  Sex = "-"
	SexMale   Sex = "Maschio"
	SexFemale Sex = "Femmina"
)

// Valid reports whether s selects a reference table.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// AgeBand identifies one of the two reference-population age partitions.
type AgeBand string

const (
	AgeBand0To2 AgeBand = "0_2"
	AgeBand2To5 AgeBand = "2_5"
)

// ageBandLimitMonths is the last month (inclusive) of the 0-2 band.
const ageBandLimitMonths = 24

// gridStep is the height sampling interval of every reference table, in cm.
const gridStep = 0.5

// LMS is the Box-Cox power (L), median (M) and coefficient of variation (S)
// for one tabulated height.
type LMS struct {
	L float64
	M float64
	S float64
}

// lmsRow is one row of a reference table as authored in lms_tables.go.
type lmsRow struct {
	Height float64
	LMS
}

// Table is an immutable weight-for-height reference partition for one sex
// and age band. Entries are keyed by height in half-centimetre units.
type Table struct {
	Sex     Sex
	Band    AgeBand
	entries map[int]LMS
	minKey  int
	maxKey  int
}

func newTable(sex Sex, band AgeBand, rows []lmsRow) *Table {
	t := &Table{
		Sex:     sex,
		Band:    band,
		entries: make(map[int]LMS, len(rows)),
		minKey:  math.MaxInt,
		maxKey:  math.MinInt,
	}
	for _, r := range rows {
		k := gridKey(r.Height)
		t.entries[k] = r.LMS
		t.minKey = min(t.minKey, k)
		t.maxKey = max(t.maxKey, k)
	}
	return t
}

// gridKey converts an on-grid height to its half-centimetre index.
func gridKey(height float64) int {
	return int(math.Round(height / gridStep))
}

// MinHeight is the smallest tabulated height in cm.
func (t *Table) MinHeight() float64 { return float64(t.minKey) * gridStep }

// MaxHeight is the largest tabulated height in cm.
func (t *Table) MaxHeight() float64 { return float64(t.maxKey) * gridStep }

// Len returns the number of tabulated heights.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the coefficients for an already quantized height. The
// boolean is false when the height is outside the tabulated range.
func (t *Table) Lookup(height float64) (LMS, bool) {
	if t == nil || math.IsNaN(height) || math.IsInf(height, 0) {
		return LMS{}, false
	}
	k := gridKey(height)
	if k < t.minKey || k > t.maxKey {
		return LMS{}, false
	}
	v, ok := t.entries[k]
	return v, ok
}

// Name is a short identifier such as "girls_0_2".
func (t *Table) Name() string {
	prefix := "boys"
	if t.Sex == SexFemale {
		prefix = "girls"
	}
	return prefix + "_" + string(t.Band)
}

var referenceTables = map[Sex]map[AgeBand]*Table{
	SexMale: {
		AgeBand0To2: newTable(SexMale, AgeBand0To2, boys0To2),
		AgeBand2To5: newTable(SexMale, AgeBand2To5, boys2To5),
	},
	SexFemale: {
		AgeBand0To2: newTable(SexFemale, AgeBand0To2, girls0To2),
		AgeBand2To5: newTable(SexFemale, AgeBand2To5, girls2To5),
	},
}

// ReferenceTables lists the four bundled partitions in a stable order.
func ReferenceTables() []*Table {
	return []*Table{
		referenceTables[SexMale][AgeBand0To2],
		referenceTables[SexMale][AgeBand2To5],
		referenceTables[SexFemale][AgeBand0To2],
		referenceTables[SexFemale][AgeBand2To5],
	}
}

// VerifyTable checks the authoring invariants of a table: every M and S is
// positive and the height grid has no holes between its first and last key.
func VerifyTable(t *Table) error {
	if len(t.entries) == 0 {
		return fmt.Errorf("table %s: empty", t.Name())
	}
	for k := t.minKey; k <= t.maxKey; k++ {
		v, ok := t.entries[k]
		h := float64(k) * gridStep
		if !ok {
			return fmt.Errorf("table %s: missing height %.1f", t.Name(), h)
		}
		if v.M <= 0 || v.S <= 0 {
			return fmt.Errorf("table %s: height %.1f has non-positive M or S (M=%g S=%g)", t.Name(), h, v.M, v.S)
		}
	}
	return nil
}
