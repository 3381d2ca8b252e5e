// Package sqlite persists survey records in the field application's sqlite
// database through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// timeLayout matches sqlite's datetime('now') so rows written by either side
// sort together.
const timeLayout = "2006-01-02 15:04:05"

// recordRow is the registro table as stored on disk.
type recordRow struct {
	Taratassi              string   `gorm:"column:taratassi;primaryKey"`
	Villaggio              string   `gorm:"column:villaggio"`
	ConsensoInformato      bool     `gorm:"column:consenso_informato"`
	ConsensoOraleTestimone bool     `gorm:"column:consenso_orale_testimone"`
	EtaMesiDichiarata      int      `gorm:"column:eta_mesi_dichiarata"`
	EtaMesiStimata         int      `gorm:"column:eta_mesi_stimata"`
	Sesso                  string   `gorm:"column:sesso"`
	MuacCm                 *float64 `gorm:"column:muac_cm"`
	Peso                   *float64 `gorm:"column:peso"`
	Altezza                *float64 `gorm:"column:altezza"`
	WHZ                    *float64 `gorm:"column:whz"`
	Q1                     string   `gorm:"column:q1"`
	Q2                     string   `gorm:"column:q2"`
	Q3                     string   `gorm:"column:q3"`
	Q4                     string   `gorm:"column:q4"`
	Q5                     string   `gorm:"column:q5"`
	CreatedAt              string   `gorm:"column:created_at"`
	SyncedAt               *string  `gorm:"column:synced_at"`
	Revision               int      `gorm:"column:revision"`
}

func (recordRow) TableName() string { return "registro" }

// Store implements registry.Store and pipeline.BatchExtractor on a sqlite file.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the database at path and runs pending migrations.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(gormsqlite.Open(dsn(path)), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database ready", "path", path, "schema_version", SchemaVersion)

	return &Store{db: db, logger: logger}, nil
}

func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// DB exposes the gorm handle for schema inspection.
func (s *Store) DB() *gorm.DB { return s.db }

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CheckReadiness pings the database.
func (s *Store) CheckReadiness(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Create inserts a new record. A taratassi that already exists yields
// registry.ErrDuplicateTaratassi.
func (s *Store) Create(ctx context.Context, rec domain.Record) error {
	row := toRow(rec)
	if row.CreatedAt == "" {
		row.CreatedAt = formatTime(domain.Now())
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&recordRow{}).Where("taratassi = ?", row.Taratassi).Count(&n).Error; err != nil {
			return fmt.Errorf("check taratassi %s: %w", row.Taratassi, err)
		}
		if n > 0 {
			return fmt.Errorf("create %s: %w", row.Taratassi, registry.ErrDuplicateTaratassi)
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("create %s: %w", row.Taratassi, registry.ErrDuplicateTaratassi)
			}
			return fmt.Errorf("create %s: %w", row.Taratassi, err)
		}
		return nil
	})
}

// Update overwrites every field except the taratassi and creation time,
// bumps the revision and clears the sync mark so the record is published
// again.
func (s *Store) Update(ctx context.Context, rec domain.Record) error {
	row := toRow(rec)
	res := s.db.WithContext(ctx).Model(&recordRow{}).
		Where("taratassi = ?", row.Taratassi).
		Updates(map[string]any{
			"villaggio":                row.Villaggio,
			"consenso_informato":       row.ConsensoInformato,
			"consenso_orale_testimone": row.ConsensoOraleTestimone,
			"eta_mesi_dichiarata":      row.EtaMesiDichiarata,
			"eta_mesi_stimata":         row.EtaMesiStimata,
			"sesso":                    row.Sesso,
			"muac_cm":                  row.MuacCm,
			"peso":                     row.Peso,
			"altezza":                  row.Altezza,
			"whz":                      row.WHZ,
			"q1":                       row.Q1,
			"q2":                       row.Q2,
			"q3":                       row.Q3,
			"q4":                       row.Q4,
			"q5":                       row.Q5,
			"synced_at":                nil,
			"revision":                 gorm.Expr("revision + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", row.Taratassi, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s: %w", row.Taratassi, registry.ErrNotFound)
	}
	return nil
}

// Get loads one record by taratassi.
func (s *Store) Get(ctx context.Context, taratassi string) (domain.Record, error) {
	key := domain.NormalizeTaratassi(taratassi)
	var row recordRow
	err := s.db.WithContext(ctx).Where("taratassi = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Record{}, fmt.Errorf("get %s: %w", key, registry.ErrNotFound)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("get %s: %w", key, err)
	}
	return fromRow(row), nil
}

// List returns records whose taratassi contains search, newest first.
func (s *Store) List(ctx context.Context, search string) ([]domain.Record, error) {
	var rows []recordRow
	like := "%" + strings.TrimSpace(search) + "%"
	err := s.db.WithContext(ctx).
		Where("taratassi LIKE ?", like).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return fromRows(rows), nil
}

// ExtractBatch returns up to batchSize records not yet synced, oldest
// first. Each carries a Commit that marks it synced unless it was edited
// after being read, in which case it stays pending.
func (s *Store) ExtractBatch(ctx context.Context, batchSize int) ([]domain.PendingRecord, error) {
	var rows []recordRow
	err := s.db.WithContext(ctx).
		Where("synced_at IS NULL").
		Order("created_at ASC").
		Limit(batchSize).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract unsynced records: %w", err)
	}

	batch := make([]domain.PendingRecord, len(rows))
	for i, row := range rows {
		taratassi, revision := row.Taratassi, row.Revision
		batch[i] = domain.PendingRecord{
			Record: fromRow(row),
			Commit: func(ctx context.Context) error {
				return s.markSynced(ctx, taratassi, revision, domain.Now())
			},
		}
	}
	return batch, nil
}

func (s *Store) markSynced(ctx context.Context, taratassi string, revision int, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&recordRow{}).
		Where("taratassi = ? AND revision = ?", taratassi, revision).
		Update("synced_at", formatTime(at))
	if res.Error != nil {
		return fmt.Errorf("mark %s synced: %w", taratassi, res.Error)
	}
	if res.RowsAffected == 0 {
		s.logger.Debug("record changed since extract, left pending", "taratassi", taratassi, "revision", revision)
	}
	return nil
}

func toRow(rec domain.Record) recordRow {
	rec = rec.Normalize()
	row := recordRow{
		Taratassi:              rec.Taratassi,
		Villaggio:              rec.Village,
		ConsensoInformato:      rec.Consent,
		ConsensoOraleTestimone: rec.Witnessed,
		EtaMesiDichiarata:      rec.DeclaredAge,
		EtaMesiStimata:         rec.EstimatedAge,
		Sesso:                  string(rec.Sex),
		MuacCm:                 rec.MUAC,
		Peso:                   rec.Weight,
		Altezza:                rec.Height,
		WHZ:                    rec.WHZ,
		Q1:                     string(rec.Q1),
		Q2:                     string(rec.Q2),
		Q3:                     string(rec.Q3),
		Q4:                     string(rec.Q4),
		Q5:                     string(rec.Q5),
	}
	if !rec.CreatedAt.IsZero() {
		row.CreatedAt = formatTime(rec.CreatedAt)
	}
	if rec.SyncedAt != nil {
		v := formatTime(*rec.SyncedAt)
		row.SyncedAt = &v
	}
	return row
}

func fromRow(row recordRow) domain.Record {
	rec := domain.Record{
		Taratassi:    row.Taratassi,
		Village:      row.Villaggio,
		Consent:      row.ConsensoInformato,
		Witnessed:    row.ConsensoOraleTestimone,
		DeclaredAge:  row.EtaMesiDichiarata,
		EstimatedAge: row.EtaMesiStimata,
		Sex:          domain.Sex(row.Sesso),
		MUAC:         row.MuacCm,
		Weight:       row.Peso,
		Height:       row.Altezza,
		WHZ:          row.WHZ,
		Q1:           domain.Answer(row.Q1),
		Q2:           domain.Answer(row.Q2),
		Q3:           domain.Answer(row.Q3),
		Q4:           domain.Answer(row.Q4),
		Q5:           domain.Answer(row.Q5),
		CreatedAt:    parseTime(row.CreatedAt),
	}
	if row.SyncedAt != nil {
		t := parseTime(*row.SyncedAt)
		rec.SyncedAt = &t
	}
	return rec
}

func fromRows(rows []recordRow) []domain.Record {
	out := make([]domain.Record, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts the stored layout and RFC 3339; anything else reads as
// the zero time.
func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
