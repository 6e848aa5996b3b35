package models

import "time"

// Unit names the counted quantity of a note's limit.
type Unit string

const (
	UnitCharacters Unit = "characters"
	UnitWords      Unit = "words"
)

// Note is a submitted line of text together with the limit it was
// written under.
type Note struct {
	ID        int64
	Content   string
	Unit      Unit
	Count     int // units used
	Max       int // limit at submission time
	CreatedAt time.Time
}

// Remaining is how many units were left when the note was submitted.
func (n Note) Remaining() int {
	return n.Max - n.Count
}
