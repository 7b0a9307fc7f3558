// ABOUTME: .intervals-mcp.toml discovery and loading
// ABOUTME: Walks the directory tree up from the working directory
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the per-project credentials file intervals-mcp
// looks for on startup.
const ConfigFileName = ".intervals-mcp.toml"

// findConfigFile walks up from the working directory looking for a
// ConfigFileName. Returns empty string if none is found.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindConfigFileFrom(dir)
}

// FindConfigFileFrom walks up from dir looking for ConfigFileName,
// stopping at the filesystem root or the home directory.
func FindConfigFileFrom(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, _ := os.UserHomeDir()

	current := absDir
	for {
		candidate := filepath.Join(current, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current || current == homeDir {
			return "", nil
		}
		current = parent
	}
}

// loadConfigFile decodes a TOML config file into cfg. Only the
// credential fields carry toml tags; transport settings are env-only.
func loadConfigFile(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}
