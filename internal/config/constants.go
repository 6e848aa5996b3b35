package config

// Application settings.
const (
	AppName    = "jot"
	DBFileName = "jot.db"
	LogFile    = "jot.log"
)

// Limit defaults.
const (
	// DefaultCharacterLimit applies when a binding is built without a limit.
	DefaultCharacterLimit = 5
)

// Setting keys.
const (
	SettingTheme = "theme"
)
