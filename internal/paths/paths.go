// Package paths resolves the configuration and data directory locations
// for the clinicdesk CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DatabaseFileName is the SQLite file kept inside the data directory.
const DatabaseFileName = "clinic.db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CLINICDESK_CONFIG_DIR"
	EnvDataDir   = "CLINICDESK_DATA_DIR"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/clinicdesk (fallback ~/.config/clinicdesk)
// macOS:   ~/Library/Application Support/clinicdesk
// Windows: %APPDATA%/clinicdesk
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "clinicdesk"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "clinicdesk"), nil
	default:
		// os.UserConfigDir returns ~/Library/Application Support on macOS
		// and %APPDATA% on Windows.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "clinicdesk"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/clinicdesk (fallback ~/.local/share/clinicdesk)
// macOS:   ~/Library/Application Support/clinicdesk
// Windows: %APPDATA%/clinicdesk
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "clinicdesk"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "clinicdesk"), nil
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "clinicdesk"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CLINICDESK_CONFIG_DIR env > platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config file value > CLINICDESK_DATA_DIR env > platform
// default.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// DatabaseFile returns the SQLite database path inside the data directory.
func DatabaseFile(dataDir string) string {
	return filepath.Join(dataDir, DatabaseFileName)
}
