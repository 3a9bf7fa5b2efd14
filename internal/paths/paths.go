package paths

import (
	"os"
	"path/filepath"
)

// EnvStateDir overrides the state directory when set.
const EnvStateDir = "SEARCH_SELECT_HOME"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// StateDir returns ~/.search-select, or $SEARCH_SELECT_HOME when set.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(home(), ".search-select")
}

// ConfigFile returns ~/.search-select/config.yaml.
func ConfigFile() string {
	return filepath.Join(StateDir(), "config.yaml")
}

// LogFile returns ~/.search-select/search-select.log.
func LogFile() string {
	return filepath.Join(StateDir(), "search-select.log")
}
