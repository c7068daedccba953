package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rnjane/neowatch/errors"
)

// Save writes a configuration to a TOML file, creating parent directories
// as needed and backing up any existing file first.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := createBackup(path); err != nil {
		return err
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Init writes the default configuration to the user config path unless a
// config file already exists there. Returns the path written or found.
func Init() (string, error) {
	path := UserConfigPath()
	if path == "" {
		return "", errors.New("could not determine home directory")
	}

	if _, err := os.Stat(path); err == nil {
		return path, errors.Newf("config file already exists at %s", path)
	}

	if err := Save(Default(), path); err != nil {
		return "", err
	}
	return path, nil
}

// createBackup copies an existing config to <path>.bak before modification
func createBackup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // No file to backup
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(path+".bak", content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create config backup")
	}
	return nil
}
