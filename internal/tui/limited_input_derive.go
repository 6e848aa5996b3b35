package tui

import (
	"fmt"

	"github.com/akyairhashvil/jot/internal/config"
	"github.com/akyairhashvil/jot/internal/limit"
)

// Level classifies how close the count is to the limit.
type Level int

const (
	LevelNeutral Level = iota
	LevelWarning
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return config.LevelWarning
	case LevelCritical:
		return config.LevelCritical
	default:
		return config.LevelNeutral
	}
}

// Remaining is max minus the unit count of text.
func Remaining(kind limit.Kind, text string) int {
	return kind.Max() - limit.UnitCount(kind, text)
}

// PlaceholderText returns explicit when set, otherwise "<max> <unit> maximum".
func PlaceholderText(explicit string, kind limit.Kind) string {
	if explicit != "" {
		return explicit
	}
	switch k := kind.(type) {
	case limit.ByCharacter:
		return fmt.Sprintf("%d characters maximum", k.N)
	case limit.ByWord:
		return fmt.Sprintf("%d words maximum", k.N)
	}
	return ""
}

// Indicator picks the counter level. Equality with max wins over the
// half-way check, so max is only ever critical.
func Indicator(count, max int) Level {
	if count == max {
		return LevelCritical
	}
	if count >= max/2 {
		return LevelWarning
	}
	return LevelNeutral
}
