package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tada-app/tada/internal/domain"
)

// ErrSettingNotFound 设置项不存在
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository 设置表的 key/value 访问
type SettingRepository struct {
	db *DB
}

func NewSettingRepository(db *DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the raw stored value for key.
func (r *SettingRepository) Get(key string) (string, error) {
	var value string
	row := r.db.gorm.Raw(`SELECT value FROM settings WHERE key = ?`, key).Row()
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
		}
		return "", err
	}
	return value, nil
}

// Set upserts the value for key.
func (r *SettingRepository) Set(key, value string) error {
	return r.db.gorm.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	).Error
}

// Appearance returns the stored appearance settings.
func (r *SettingRepository) Appearance() (domain.AppearanceSettings, error) {
	var s domain.AppearanceSettings
	raw, err := r.Get(domain.SettingKeyAppearance)
	if err != nil {
		return s, err
	}
	return s, domain.DecodeSetting(raw, &s)
}

// Preferences returns the stored preference settings.
func (r *SettingRepository) Preferences() (domain.PreferenceSettings, error) {
	var s domain.PreferenceSettings
	raw, err := r.Get(domain.SettingKeyPreferences)
	if err != nil {
		return s, err
	}
	return s, domain.DecodeSetting(raw, &s)
}

// AI returns the stored AI provider settings.
func (r *SettingRepository) AI() (domain.AISettings, error) {
	var s domain.AISettings
	raw, err := r.Get(domain.SettingKeyAI)
	if err != nil {
		return s, err
	}
	return s, domain.DecodeSetting(raw, &s)
}
