package tui

import (
	"context"

	"github.com/akyairhashvil/jot/internal/models"
)

// NoteStore defines the persistence methods the TUI requires.
type NoteStore interface {
	AddNote(ctx context.Context, note models.Note) (int64, error)
	ListNotes(ctx context.Context, limit int) ([]models.Note, error)

	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// NoteLister is the read side used by report export.
type NoteLister interface {
	ListNotes(ctx context.Context, limit int) ([]models.Note, error)
}
