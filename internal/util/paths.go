package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is $XDG_DATA_HOME/<app>, falling back to ~/.local/share/<app>.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported reports land when no path is given.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app)
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	userDirs := filepath.Join(home, ".config", "user-dirs.dirs")
	if data, err := os.ReadFile(userDirs); err == nil {
		if dir := userDirValue(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func userDirValue(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
