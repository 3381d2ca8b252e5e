// Package csvexport writes survey records as a semicolon-separated CSV file
// that opens directly in a spreadsheet with Italian locale settings.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
)

// bom marks the file as UTF-8 for spreadsheet applications.
const bom = "\ufeff"

const createdAtLayout = "2006-01-02 15:04:05"

// Header is the first row of every export.
var Header = []string{
	"Taratassi", "Villaggio", "Spiegazione consenso informato", "Consenso orale con testimone",
	"Età Dichiarata", "Età Stimata", "Sesso", "MUAC", "Peso (KG)", "Altezza (cm)",
	"Indice WHZ", "Domanda 1", "Domanda 2", "Domanda 3", "Domanda 4", "Domanda 5", "Data creazione",
}

// Writer implements registry.Exporter.
type Writer struct{}

// Export writes records to w.
func (Writer) Export(w io.Writer, records []domain.Record) error {
	return Write(w, records)
}

// Write emits the BOM, the header and one row per record.
func Write(w io.Writer, records []domain.Record) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(Row(rec)); err != nil {
			return fmt.Errorf("write csv row %s: %w", rec.Taratassi, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile exports records to path, creating parent directories.
func WriteFile(path string, records []domain.Record) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, records)
}

// Row renders one record in Header order. Absent values are empty.
func Row(rec domain.Record) []string {
	created := ""
	if !rec.CreatedAt.IsZero() {
		created = rec.CreatedAt.UTC().Format(createdAtLayout)
	}
	return []string{
		rec.Taratassi,
		rec.Village,
		yesNo(rec.Consent),
		yesNo(rec.Witnessed),
		strconv.Itoa(rec.DeclaredAge),
		strconv.Itoa(rec.EstimatedAge),
		string(rec.Sex),
		number(rec.MUAC),
		number(rec.Weight),
		number(rec.Height),
		number(rec.WHZ),
		string(rec.Q1),
		string(rec.Q2),
		string(rec.Q3),
		string(rec.Q4),
		string(rec.Q5),
		created,
	}
}

func yesNo(b bool) string {
	if b {
		return string(domain.AnswerYes)
	}
	return string(domain.AnswerNo)
}

func number(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
