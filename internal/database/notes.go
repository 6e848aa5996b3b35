package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/akyairhashvil/jot/internal/models"
)

// AddNote stores a submitted note and returns its ID. Whitespace-only
// content is rejected with ErrEmptyNote.
func (d *Database) AddNote(ctx context.Context, note models.Note) (int64, error) {
	if strings.TrimSpace(note.Content) == "" {
		return 0, wrapNoteErr("add", 0, ErrEmptyNote)
	}
	unit := note.Unit
	if unit == "" {
		unit = models.UnitCharacters
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO notes (content, unit, count, max_units) VALUES (?, ?, ?, ?)",
		note.Content, string(unit), note.Count, note.Max)
	if err != nil {
		return 0, wrapNoteErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapNoteErr("add", 0, err)
}

func (d *Database) GetNote(ctx context.Context, id int64) (models.Note, error) {
	row := d.DB.QueryRowContext(ctx, `
		SELECT id, content, unit, count, max_units, created_at
		FROM notes
		WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNoteNotFound
	}
	return n, wrapNoteErr("get", id, err)
}

// ListNotes returns the newest notes first. A limit <= 0 returns all notes.
func (d *Database) ListNotes(ctx context.Context, limit int) ([]models.Note, error) {
	query := `
		SELECT id, content, unit, count, max_units, created_at
		FROM notes
		ORDER BY created_at DESC, id DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapNoteErr("list", 0, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, wrapNoteErr("list", 0, err)
		}
		notes = append(notes, n)
	}
	return notes, wrapNoteErr("list", 0, rows.Err())
}

func (d *Database) DeleteNote(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return wrapNoteErr("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapNoteErr("delete", id, err)
	}
	if n == 0 {
		return wrapNoteErr("delete", id, ErrNoteNotFound)
	}
	return nil
}

func (d *Database) CountNotes(ctx context.Context) (int, error) {
	var count int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count)
	return count, wrapNoteErr("count", 0, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(r rowScanner) (models.Note, error) {
	var n models.Note
	var unit string
	var created sql.NullTime
	if err := r.Scan(&n.ID, &n.Content, &unit, &n.Count, &n.Max, &created); err != nil {
		return models.Note{}, err
	}
	n.Unit = models.Unit(unit)
	if created.Valid {
		n.CreatedAt = created.Time
	}
	return n, nil
}
