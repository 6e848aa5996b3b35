package config

// Layout constants.
const (
	// InputWidth is the editor width in cells.
	InputWidth = 40

	// MinInputWidth keeps the divider visible on narrow terminals.
	MinInputWidth = 10

	// DividerRune draws the line between editor and counter.
	DividerRune = "─"
)

// Display limits.
const (
	// MaxVisibleNotes limits notes listed under the input.
	MaxVisibleNotes = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Indicator labels.
const (
	LevelNeutral  = "neutral"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)
