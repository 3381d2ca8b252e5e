package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is returned by ComputeWHZ when the weight or the M/S
// coefficients are not strictly positive.
var ErrInvalidInput = errors.New("invalid WHZ input")

const (
	// ageDisagreementMonths is the largest declared/estimated gap for which
	// the declared age is still trusted.
	ageDisagreementMonths = 3

	// lambdaEpsilon below which L is treated as zero (log branch of LMS).
	lambdaEpsilon = 1e-12
)

// Measurement holds the form inputs that drive the WHZ computation.
type Measurement struct {
	Sex          Sex     `json:"sex"`
	DeclaredAge  int     `json:"declared_age"`
	EstimatedAge int     `json:"estimated_age"`
	HeightCm     float64 `json:"height"`
	WeightKg     float64 `json:"weight"`
}

// Result is the outcome of Evaluate. The zero value is Indeterminate.
type Result struct {
	ZScore   float64  `json:"z_score"`
	Severity Severity `json:"severity"`
}

// Indeterminate is returned when the inputs do not allow a computation yet.
var Indeterminate = Result{}

// Determinate reports whether r carries a z-score.
func (r Result) Determinate() bool {
	return r.Severity != SeverityIndeterminate
}

// ResolveAge picks the age used for table selection. The staff estimate wins
// when it differs from the caregiver's declaration by more than 3 months.
func ResolveAge(declared, estimated int) int {
	diff := declared - estimated
	if diff < 0 {
		diff = -diff
	}
	if diff > ageDisagreementMonths {
		return estimated
	}
	return declared
}

// QuantizeHeight snaps a height onto the 0.5 cm grid, rounding exact
// midpoints up (70.25 -> 70.5). Zero, negative and non-finite heights
// return 0, meaning "not computable".
func QuantizeHeight(heightCm float64) float64 {
	if heightCm <= 0 || math.IsNaN(heightCm) || math.IsInf(heightCm, 0) {
		return 0
	}
	return math.Floor(heightCm/gridStep+0.5) * gridStep
}

// AgeBandFor maps an age in months to its reference band.
func AgeBandFor(ageMonths int) AgeBand {
	if ageMonths <= ageBandLimitMonths {
		return AgeBand0To2
	}
	return AgeBand2To5
}

// SelectTable returns the reference partition for sex and age. The boolean
// is false for an unset or unknown sex.
func SelectTable(sex Sex, ageMonths int) (*Table, bool) {
	if !sex.Valid() {
		return nil, false
	}
	t, ok := referenceTables[sex][AgeBandFor(ageMonths)]
	return t, ok
}

// ComputeWHZ applies the LMS transform to a weight. The result is not
// rounded.
func ComputeWHZ(weightKg float64, c LMS) (float64, error) {
	if !(weightKg > 0) || !(c.M > 0) || !(c.S > 0) {
		return 0, fmt.Errorf("%w: weight, M and S must be > 0 (weight=%g M=%g S=%g)", ErrInvalidInput, weightKg, c.M, c.S)
	}
	if math.Abs(c.L) < lambdaEpsilon {
		return math.Log(weightKg/c.M) / c.S, nil
	}
	return (math.Pow(weightKg/c.M, c.L) - 1) / (c.L * c.S), nil
}

// RoundZScore rounds to one decimal place. It rounds the exact binary value,
// so -3.05 (stored as -3.04999...) gives -3.0, and exact ties go to even.
// Negative zero is normalized so the displayed value never reads "-0.0".
func RoundZScore(z float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(z, 'f', 1, 64), 64)
	if err != nil || r == 0 {
		return 0
	}
	return r
}

// Evaluate runs the full WHZ procedure for one measurement. Missing or
// out-of-range inputs yield Indeterminate with a nil error; an error is only
// returned when reference coefficients violate the LMS preconditions.
func Evaluate(m Measurement) (Result, error) {
	table, ok := SelectTable(m.Sex, ResolveAge(m.DeclaredAge, m.EstimatedAge))
	if !ok {
		return Indeterminate, nil
	}

	height := QuantizeHeight(m.HeightCm)
	if height == 0 {
		return Indeterminate, nil
	}

	coeffs, ok := table.Lookup(height)
	if !ok {
		return Indeterminate, nil
	}

	if !(m.WeightKg > 0) {
		return Indeterminate, nil
	}

	z, err := ComputeWHZ(m.WeightKg, coeffs)
	if err != nil {
		return Indeterminate, fmt.Errorf("%s at %.1f cm: %w", table.Name(), height, err)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return Indeterminate, nil
	}

	z = RoundZScore(z)
	return Result{ZScore: z, Severity: Classify(z)}, nil
}
