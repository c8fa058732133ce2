package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// AddEvent inserts a schedule event. A blank color gets the default tag.
func (db *DB) AddEvent(ctx context.Context, ev *model.ScheduleEvent) (int64, error) {
	if ev.Color == "" {
		ev.Color = model.DefaultEventColor
	}
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO schedule_events (title, start_time, end_time, color, date) VALUES (?, ?, ?, ?, ?)",
		ev.Title, ev.StartTime, ev.EndTime, ev.Color, ev.Date,
	)
	if err != nil {
		return 0, err
	}
	ev.ID, err = res.LastInsertId()
	return ev.ID, err
}

// ListEventsForDate returns the events stored for one calendar date,
// ordered by start time.
func (db *DB) ListEventsForDate(ctx context.Context, date time.Time) ([]model.ScheduleEvent, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, title, start_time, end_time, color, date FROM schedule_events WHERE date = ? ORDER BY start_time, id",
		calendar.FormatDate(date),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []model.ScheduleEvent
	for rows.Next() {
		var ev model.ScheduleEvent
		var color sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.StartTime, &ev.EndTime, &color, &ev.Date); err != nil {
			return nil, err
		}
		ev.Color = color.String
		events = append(events, ev)
	}
	return events, rows.Err()
}

// DeleteEvent removes an event.
func (db *DB) DeleteEvent(ctx context.Context, id int64) error {
	return affectedOne(db.conn.ExecContext(ctx, "DELETE FROM schedule_events WHERE id = ?", id))
}
