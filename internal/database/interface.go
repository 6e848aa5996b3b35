package database

import (
	"context"

	"github.com/akyairhashvil/jot/internal/models"
)

// NoteRepository defines note-related database operations.
type NoteRepository interface {
	AddNote(ctx context.Context, note models.Note) (int64, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	ListNotes(ctx context.Context, limit int) ([]models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	CountNotes(ctx context.Context) (int, error)
}

// SettingsRepository stores key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	NoteRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
