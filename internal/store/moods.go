package store

import (
	"context"
	"database/sql"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// LogMood records a mood entry stamped with the current time.
func (db *DB) LogMood(ctx context.Context, mood model.Mood) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO moods (mood, logged_at) VALUES (?, ?)", string(mood), db.timestamp())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LatestMood returns the most recently logged mood label. ok is false when
// nothing has been logged.
func (db *DB) LatestMood(ctx context.Context) (string, bool, error) {
	var mood string
	err := db.conn.QueryRowContext(ctx,
		"SELECT mood FROM moods ORDER BY logged_at DESC, id DESC LIMIT 1").Scan(&mood)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return mood, true, nil
}

// ListMoods returns up to limit mood entries, newest first.
func (db *DB) ListMoods(ctx context.Context, limit int) ([]model.MoodLog, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, mood, logged_at FROM moods ORDER BY logged_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var logs []model.MoodLog
	for rows.Next() {
		var m model.MoodLog
		var logged sql.NullString
		if err := rows.Scan(&m.ID, &m.Mood, &logged); err != nil {
			return nil, err
		}
		m.LoggedAt = logged.String
		logs = append(logs, m)
	}
	return logs, rows.Err()
}
