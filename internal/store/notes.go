package store

import (
	"context"
	"database/sql"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// AddNote inserts a note and stamps both timestamps.
func (db *DB) AddNote(ctx context.Context, n *model.Note) (int64, error) {
	now := db.timestamp()
	n.CreatedAt, n.UpdatedAt = now, now
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)",
		n.Title, n.Content, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	n.ID, err = res.LastInsertId()
	return n.ID, err
}

// ListNotes returns every note, most recently edited first.
func (db *DB) ListNotes(ctx context.Context) ([]model.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		var content, created, updated sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &content, &created, &updated); err != nil {
			return nil, err
		}
		n.Content = content.String
		n.CreatedAt = created.String
		n.UpdatedAt = updated.String
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote returns a note by id, or ErrNotFound.
func (db *DB) GetNote(ctx context.Context, id int64) (model.Note, error) {
	var n model.Note
	var content, created, updated sql.NullString
	err := db.conn.QueryRowContext(ctx,
		"SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?", id,
	).Scan(&n.ID, &n.Title, &content, &created, &updated)
	if err == sql.ErrNoRows {
		return model.Note{}, ErrNotFound
	}
	if err != nil {
		return model.Note{}, err
	}
	n.Content = content.String
	n.CreatedAt = created.String
	n.UpdatedAt = updated.String
	return n, nil
}

// UpdateNote rewrites a note's title and content and bumps updated_at.
func (db *DB) UpdateNote(ctx context.Context, n *model.Note) error {
	n.UpdatedAt = db.timestamp()
	return affectedOne(db.conn.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		n.Title, n.Content, n.UpdatedAt, n.ID,
	))
}

// DeleteNote removes a note.
func (db *DB) DeleteNote(ctx context.Context, id int64) error {
	return affectedOne(db.conn.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id))
}
