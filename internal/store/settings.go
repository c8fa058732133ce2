package store

import (
	"context"
	"database/sql"
)

// Setting keys persisted in the settings table.
const (
	SettingUserName      = "userName"
	SettingDarkMode      = "darkMode"
	SettingMonthlyBudget = "monthlyBudget"
)

// GetSetting returns the stored value for key, or def when unset.
func (db *DB) GetSetting(ctx context.Context, key, def string) (string, error) {
	var value sql.NullString
	err := db.conn.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows || (err == nil && !value.Valid) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

// SetSetting stores value under key, replacing any previous value.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	return err
}

// Settings returns every stored key/value pair.
func (db *DB) Settings(ctx context.Context) (map[string]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value.String
	}
	return out, rows.Err()
}
