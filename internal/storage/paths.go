// Package storage persists user preferences and finished-game records in
// BadgerDB.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chess"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chess/
// - Linux: $XDG_DATA_HOME/chess/ or ~/.local/share/chess/
// - Windows: %APPDATA%/chess/
func GetDataDir() (string, error) {
	baseDir, err := baseDataDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

func baseDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// DatabaseDir returns the BadgerDB directory under dataDir, creating it.
// An empty dataDir means the platform data directory.
func DatabaseDir(dataDir string) (string, error) {
	if dataDir == "" {
		var err error
		if dataDir, err = GetDataDir(); err != nil {
			return "", err
		}
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.Printf("[STORAGE] Database directory: %s", dbDir)
	return dbDir, nil
}
