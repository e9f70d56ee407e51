package sqlite

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is one versioned, up-only schema change. Scripts must be safe to
// re-run against a database that already contains the objects they create
// (CREATE IF NOT EXISTS / INSERT OR IGNORE), so an accidental re-application
// degrades to a no-op.
type Migration struct {
	Version     int
	Description string
	Script      string
}

// schema_migrations 记录已应用的版本，每个版本一行
const createVersionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	applied_at INTEGER NOT NULL
);`

// ValidateMigrations checks that versions are contiguous and strictly
// ascending starting at 1.
func ValidateMigrations(migrations []Migration) error {
	for i, m := range migrations {
		if m.Version != i+1 {
			return fmt.Errorf("migration list is not contiguous: index %d has version %d, want %d", i, m.Version, i+1)
		}
	}
	return nil
}

// CurrentVersion returns the last applied schema version, 0 for a fresh
// database. Creates the version table if it does not exist yet.
func (d *DB) CurrentVersion() (int, error) {
	if err := d.gorm.Exec(createVersionTable).Error; err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var version int
	if err := d.gorm.Raw(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Pending returns the migrations with a version greater than current, in order.
func Pending(current int, migrations []Migration) []Migration {
	for i, m := range migrations {
		if m.Version > current {
			return migrations[i:]
		}
	}
	return nil
}

// ApplyMigrations applies every migration newer than the stored schema
// version, in ascending order, each inside its own transaction together with
// its version record. Any failure aborts without advancing the version.
func (d *DB) ApplyMigrations(migrations []Migration) error {
	if err := ValidateMigrations(migrations); err != nil {
		return err
	}

	current, err := d.CurrentVersion()
	if err != nil {
		return err
	}

	pending := Pending(current, migrations)
	if len(pending) == 0 {
		log.Printf("[Migration] Already at version %d, no migrations needed", current)
		return nil
	}

	log.Printf("[Migration] Running %d migration(s) from version %d to %d", len(pending), current, migrations[len(migrations)-1].Version)

	for _, m := range pending {
		log.Printf("[Migration] Applying %d: %s", m.Version, m.Description)
		err := d.gorm.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.Script).Error; err != nil {
				return err
			}
			return tx.Exec(
				`INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)`,
				m.Version, m.Description, time.Now().UnixMilli(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}
		log.Printf("[Migration] Migration %d completed", m.Version)
	}

	return nil
}
