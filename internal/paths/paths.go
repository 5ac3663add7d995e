// Package paths resolves the readykit configuration and data directories.
//
// Both follow the same precedence: command-line flag, then environment
// variable, then the platform default. The data directory additionally
// honours data_dir from config.yaml, which sits between the flag and the
// environment.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config and data roots.
const AppName = "readykit"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "READYKIT_CONFIG_DIR"
	EnvDataDir   = "READYKIT_DATA_DIR"
)

// ConfigFileName is the configuration file inside the config directory.
const ConfigFileName = "config.yaml"

// platformDir holds platform lookups so tests can replace them.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $env/readykit, or ~/fallback.../readykit when env is unset.
func xdgDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/readykit (fallback ~/.config/readykit)
// macOS:   ~/Library/Application Support/readykit
// Windows: %APPDATA%/readykit
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultDataDir returns the platform data directory.
//
// Linux:   $XDG_DATA_HOME/readykit (fallback ~/.local/share/readykit)
// macOS:   ~/Library/Application Support/readykit/data
// Windows: %APPDATA%/readykit/data
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", ".local", "share")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "data"), nil
}

// ResolveConfigDir returns flag, else $READYKIT_CONFIG_DIR, else
// DefaultConfigDir. Explicit paths are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns flag, else configValue (data_dir from config.yaml),
// else $READYKIT_DATA_DIR, else DefaultDataDir.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, dir := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultDataDir()
}
