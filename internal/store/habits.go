package store

import (
	"context"
	"database/sql"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// AddHabit inserts a habit with an empty completion set.
func (db *DB) AddHabit(ctx context.Context, name string) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO habits (name, completed_days, created_at) VALUES (?, '', ?)",
		name, db.timestamp(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListHabits returns every habit, newest first.
func (db *DB) ListHabits(ctx context.Context) ([]model.Habit, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, name, completed_days, created_at FROM habits ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var habits []model.Habit
	for rows.Next() {
		var h model.Habit
		var days, created sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &days, &created); err != nil {
			return nil, err
		}
		h.CompletedDays = days.String
		h.CreatedAt = created.String
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// GetHabit returns a habit by id, or ErrNotFound.
func (db *DB) GetHabit(ctx context.Context, id int64) (model.Habit, error) {
	var h model.Habit
	var days, created sql.NullString
	err := db.conn.QueryRowContext(ctx,
		"SELECT id, name, completed_days, created_at FROM habits WHERE id = ?", id,
	).Scan(&h.ID, &h.Name, &days, &created)
	if err == sql.ErrNoRows {
		return model.Habit{}, ErrNotFound
	}
	if err != nil {
		return model.Habit{}, err
	}
	h.CompletedDays = days.String
	h.CreatedAt = created.String
	return h, nil
}

// SetHabitCompletionDates replaces a habit's stored completion set with one
// write.
func (db *DB) SetHabitCompletionDates(ctx context.Context, habitID int64, days model.CompletionSet) error {
	return affectedOne(db.conn.ExecContext(ctx,
		"UPDATE habits SET completed_days = ? WHERE id = ?", days.String(), habitID))
}

// DeleteHabit removes a habit.
func (db *DB) DeleteHabit(ctx context.Context, id int64) error {
	return affectedOne(db.conn.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id))
}
