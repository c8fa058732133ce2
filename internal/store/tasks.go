package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/blackwell-systems/focussphere/internal/model"
)

const taskColumns = `id, title, description, due_date, priority, completed, tags, recurring, created_at`

// AddTask inserts a task and returns its id. A blank priority is stored as
// Medium.
func (db *DB) AddTask(ctx context.Context, t *model.Task) (int64, error) {
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.CreatedAt == "" {
		t.CreatedAt = db.timestamp()
	}
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO tasks (title, description, due_date, priority, completed, tags, recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.DueDate, string(t.Priority), t.Completed,
		t.Tags, t.Recurring, t.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	t.ID, err = res.LastInsertId()
	return t.ID, err
}

// ListTasks returns every task, pending first, newest first within each group.
func (db *DB) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY completed ASC, created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns a task by id, or ErrNotFound.
func (db *DB) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, ErrNotFound
	}
	return t, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (model.Task, error) {
	var t model.Task
	var desc, due, prio, tags, recur, created sql.NullString
	var completed sql.NullInt64
	if err := r.Scan(&t.ID, &t.Title, &desc, &due, &prio, &completed, &tags, &recur, &created); err != nil {
		return model.Task{}, err
	}
	t.Description = desc.String
	t.DueDate = due.String
	t.Priority = model.ParsePriority(prio.String)
	t.Completed = completed.Int64 == 1
	t.Tags = tags.String
	t.Recurring = recur.String
	t.CreatedAt = created.String
	return t, nil
}

// SetTaskCompleted marks a task done or pending.
func (db *DB) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	return affectedOne(db.conn.ExecContext(ctx,
		"UPDATE tasks SET completed = ? WHERE id = ?", completed, id))
}

// DeleteTask removes a task.
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	return affectedOne(db.conn.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id))
}

// ClearCompletedTasks removes every completed task and reports how many went.
func (db *DB) ClearCompletedTasks(ctx context.Context) (int64, error) {
	res, err := db.conn.ExecContext(ctx, "DELETE FROM tasks WHERE completed = 1")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// NormalizeTags trims each comma-separated tag and drops blanks.
func NormalizeTags(tags []string) string {
	var out []string
	for _, tag := range tags {
		for _, part := range strings.Split(tag, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return strings.Join(out, ",")
}
