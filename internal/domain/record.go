package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Villages where the survey is run.
const (
	VillageBefandefa   = "Befandefa"
	VillageAndavadoaka = "Andavadoaka"
)

// Unanswered is the placeholder for an unselected choice.
const Unanswered = "-"

// Answer is a checklist reply.
type Answer string

const (
	AnswerYes     Answer = "Sì"
	AnswerNo      Answer = "No"
	AnswerUnknown Answer = "Non so"
)

// Record is one screened subject, keyed by the field-assigned taratassi.
type Record struct {
	Taratassi    string     `json:"taratassi"`
	Village      string     `json:"village"`
	Consent      bool       `json:"consent"`
	Witnessed    bool       `json:"witnessed"`
	DeclaredAge  int        `json:"declared_age"`
	EstimatedAge int        `json:"age_estimation"`
	Sex          Sex        `json:"gender"`
	MUAC         *float64   `json:"muac"`
	Weight       *float64   `json:"weight"`
	Height       *float64   `json:"height"`
	WHZ          *float64   `json:"whz"`
	Q1           Answer     `json:"q1"`
	Q2           Answer     `json:"q2"`
	Q3           Answer     `json:"q3"`
	Q4           Answer     `json:"q4"`
	Q5           Answer     `json:"q5"`
	CreatedAt    time.Time  `json:"created_at"`
	SyncedAt     *time.Time `json:"synced_at,omitempty"`
}

// Measurement extracts the WHZ inputs from the record. Absent measurements
// read as zero.
func (r Record) Measurement() Measurement {
	return Measurement{
		Sex:          r.Sex,
		DeclaredAge:  r.DeclaredAge,
		EstimatedAge: r.EstimatedAge,
		HeightCm:     deref(r.Height),
		WeightKg:     deref(r.Weight),
	}
}

// Normalize trims and upper-cases the taratassi, maps zero measurements to
// absent, and fills empty choices with the unanswered placeholder.
func (r Record) Normalize() Record {
	r.Taratassi = NormalizeTaratassi(r.Taratassi)
	r.Village = strings.TrimSpace(r.Village)
	if r.Village == "" {
		r.Village = Unanswered
	}
	if r.Sex == "" {
		r.Sex = SexUnset
	}
	r.MUAC = nonZero(r.MUAC)
	r.Weight = nonZero(r.Weight)
	r.Height = nonZero(r.Height)
	for _, q := range []*Answer{&r.Q1, &r.Q2, &r.Q3, &r.Q4, &r.Q5} {
		if *q == "" {
			*q = Unanswered
		}
	}
	return r
}

// NormalizeTaratassi is the canonical form of a subject code.
func NormalizeTaratassi(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ErrValidation marks a record that is not complete enough to save.
var ErrValidation = errors.New("record validation failed")

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

var fieldLabels = map[string]string{
	"taratassi":      "N° Taratassi",
	"village":        "Village",
	"consent":        "Spiegazione consenso informato",
	"witnessed":      "Consenso orale con testimone",
	"declared_age":   "Età in mesi dichiarata",
	"age_estimation": "Età in mesi stimata",
	"gender":         "Sesso",
	"muac":           "MUAC",
	"weight":         "Peso",
	"height":         "Altezza",
	"whz":            "WHZ",
}

// Validate checks the record in form order and reports the first missing
// field. The taratassi check is skipped when requireTaratassi is false.
func (r Record) Validate(requireTaratassi bool) error {
	checks := []struct {
		field   string
		missing bool
	}{
		{"taratassi", requireTaratassi && r.Taratassi == ""},
		{"village", !validVillage(r.Village)},
		{"consent", !r.Consent},
		{"witnessed", !r.Witnessed},
		{"declared_age", r.DeclaredAge <= 0},
		{"age_estimation", r.EstimatedAge <= 0},
		{"gender", !r.Sex.Valid()},
		{"muac", r.MUAC == nil},
		{"weight", r.Weight == nil},
		{"height", r.Height == nil},
		// whz == 0.0 is a legitimate score; only absence is missing.
		{"whz", r.WHZ == nil},
		{"q1", !validAnswer(r.Q1, true)},
		{"q2", !validAnswer(r.Q2, false)},
		{"q3", !validAnswer(r.Q3, true)},
		{"q4", !validAnswer(r.Q4, true)},
		{"q5", !validAnswer(r.Q5, false)},
	}

	for _, c := range checks {
		if !c.missing {
			continue
		}
		if strings.HasPrefix(c.field, "q") {
			return &ValidationError{Field: c.field, Message: fmt.Sprintf("Domanda %s mancante", c.field[1:])}
		}
		return &ValidationError{Field: c.field, Message: fieldLabels[c.field] + " è obbligatorio."}
	}
	return nil
}

func validVillage(v string) bool {
	return v == VillageBefandefa || v == VillageAndavadoaka
}

// validAnswer accepts Sì/No, plus "Non so" when allowUnknown is set.
func validAnswer(a Answer, allowUnknown bool) bool {
	switch a {
	case AnswerYes, AnswerNo:
		return true
	case AnswerUnknown:
		return allowUnknown
	default:
		return false
	}
}

// ParseSex accepts the stored labels and common short forms.
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maschio", "m", "male", "boy", "boys":
		return SexMale
	case "femmina", "f", "female", "girl", "girls":
		return SexFemale
	default:
		return SexUnset
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func nonZero(p *float64) *float64 {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}

// Float returns a pointer to v, for building records in code.
func Float(v float64) *float64 { return &v }
