package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SchemaVersion is the schema this build expects.
const SchemaVersion = 4

// migration brings the schema from version n-1 to n inside the caller's
// transaction.
type migration func(tx *gorm.DB) error

var migrations = map[int]migration{
	1: createRegistro,
	2: addWHZ,
	3: addSyncedAt,
	4: addRevision,
}

// Migrate runs every pending step up to SchemaVersion in one transaction.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return migrate(ctx, db, SchemaVersion, migrations)
}

func migrate(ctx context.Context, db *gorm.DB, target int, steps map[int]migration) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureVersionTable(tx); err != nil {
			return err
		}
		current, err := currentVersion(tx)
		if err != nil {
			return err
		}
		if current > target {
			return fmt.Errorf("database schema version %d is newer than application version %d", current, target)
		}

		for current < target {
			next := current + 1
			step, ok := steps[next]
			if !ok {
				return fmt.Errorf("missing migration to schema version %d", next)
			}
			if err := step(tx); err != nil {
				return fmt.Errorf("migrate to schema version %d: %w", next, err)
			}
			if err := tx.Exec("UPDATE schema_version SET version = ? WHERE id = 1", next).Error; err != nil {
				return fmt.Errorf("set schema version %d: %w", next, err)
			}
			current = next
		}
		return nil
	})
}

// Version reads the recorded schema version. A database that was never
// migrated reports 0.
func Version(ctx context.Context, db *gorm.DB) (int, error) {
	var v int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureVersionTable(tx); err != nil {
			return err
		}
		var err error
		v, err = currentVersion(tx)
		return err
	})
	return v, err
}

func ensureVersionTable(tx *gorm.DB) error {
	if err := tx.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL
	)`).Error; err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	if err := tx.Exec(`INSERT INTO schema_version (id, version) VALUES (1, 0)
		ON CONFLICT(id) DO NOTHING`).Error; err != nil {
		return fmt.Errorf("seed schema_version: %w", err)
	}
	return nil
}

func currentVersion(tx *gorm.DB) (int, error) {
	var v int
	if err := tx.Raw("SELECT version FROM schema_version WHERE id = 1").Scan(&v).Error; err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// createRegistro keeps the column layout of databases written by the field
// application, so existing files migrate in place.
func createRegistro(tx *gorm.DB) error {
	return tx.Exec(`CREATE TABLE IF NOT EXISTS registro (
		taratassi TEXT PRIMARY KEY,
		villaggio TEXT NOT NULL CHECK (villaggio IN ('Andavadoaka','Befandefa')),
		consenso_informato INTEGER NOT NULL CHECK (consenso_informato IN (0,1)),
		consenso_orale_testimone INTEGER NOT NULL CHECK (consenso_orale_testimone IN (0,1)),
		eta_mesi_dichiarata INTEGER NOT NULL CHECK (eta_mesi_dichiarata >= 0),
		eta_mesi_stimata INTEGER NOT NULL CHECK (eta_mesi_stimata >= 0),
		sesso TEXT NOT NULL CHECK (sesso IN ('Maschio','Femmina')),
		muac_cm REAL,
		peso REAL,
		altezza REAL,
		q1 TEXT NOT NULL CHECK (q1 IN ('Sì','No','Non so')),
		q2 TEXT NOT NULL CHECK (q2 IN ('Sì','No','Non so')),
		q3 TEXT NOT NULL CHECK (q3 IN ('Sì','No','Non so')),
		q4 TEXT NOT NULL CHECK (q4 IN ('Sì','No','Non so')),
		q5 TEXT NOT NULL CHECK (q5 IN ('Sì','No','Non so')),
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`).Error
}

func addWHZ(tx *gorm.DB) error {
	return tx.Exec("ALTER TABLE registro ADD COLUMN whz REAL").Error
}

func addSyncedAt(tx *gorm.DB) error {
	if err := tx.Exec("ALTER TABLE registro ADD COLUMN synced_at TEXT").Error; err != nil {
		return err
	}
	return tx.Exec("CREATE INDEX IF NOT EXISTS idx_registro_synced_at ON registro (synced_at)").Error
}

// addRevision counts edits so a publish only marks the version it read.
func addRevision(tx *gorm.DB) error {
	return tx.Exec("ALTER TABLE registro ADD COLUMN revision INTEGER NOT NULL DEFAULT 0").Error
}
