// Package domain models the child nutrition screening record and the
// Weight-for-Height Z-score (WHZ) engine used to classify it.
//
// # Reference Data
//
// The LMS coefficients in lms_tables.go are the WHO Child Growth Standards
// weight-for-length (0-2 years) and weight-for-height (2-5 years) tables,
// one partition per sex and age band, sampled every 0.5 cm:
//
//	boys_0_2, girls_0_2:   45.0 – 110.0 cm
//	boys_2_5, girls_2_5:   65.0 – 120.0 cm
//
// Tables are built once at package init and never mutated, so they are safe
// for concurrent readers without locking.
//
// # Computation
//
// Evaluate runs these steps and stops at the first that cannot produce a
// value, returning Indeterminate:
//
//	age:      declared age, unless |declared - estimated| > 3 months,
//	          in which case the staff estimate wins
//	table:    sex must be Maschio or Femmina; age <= 24 months → 0_2, else 2_5
//	height:   rounded to the nearest 0.5 cm, midpoints up (70.25 → 70.5);
//	          0 means "not entered"
//	lookup:   heights outside the tabulated range are not computable
//	weight:   must be > 0
//	z-score:  L≈0 → ln(w/M)/S, otherwise ((w/M)^L − 1)/(L·S)
//	rounding: one decimal place, before classification
//
// Classification works on the rounded value so the displayed number and
// the band always agree:
//
//	z >= -2        Non Malnutrito
//	-3 <= z < -2   Malnutrizione Moderata
//	z < -3         Malnutrizione Severa
//
// # Errors
//
// Indeterminate is a normal data-entry state and is never an error.
// ComputeWHZ returns ErrInvalidInput when the weight, M or S is not
// positive; through Evaluate that can only happen with corrupted
// coefficients.
//
// # Records
//
// A Record is keyed by its taratassi, the field-assigned subject code,
// stored trimmed and upper-cased. Choice fields use "-" for "not selected".
// Validate mirrors the data-entry form: fields are checked in form order and
// the first missing one is reported with its Italian label.
package domain
