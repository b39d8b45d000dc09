// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "pyvsgen"
	// SettingsFileName is the name of the settings file.
	SettingsFileName = "settings.toml"
	// RegistryFileName is the default interpreter registry file name.
	RegistryFileName = "registry.toml"
)

// Settings holds tool-level configuration, as opposed to the suite
// configuration that describes solutions and projects.
type Settings struct {
	// Parallel enables parallel execution of the write phases.
	Parallel bool `mapstructure:"parallel"`
	// Workers bounds the worker pool for parallel batches.
	Workers int `mapstructure:"workers"`
	// FailFast aborts a batch on the first task failure.
	FailFast bool `mapstructure:"fail_fast"`
	// RegistryPath locates the interpreter registry file.
	RegistryPath string `mapstructure:"registry_path"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Parallel: false,
		Workers:  runtime.NumCPU(),
		FailFast: false,
	}
}

// ConfigDir returns the pyvsgen configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads settings from the optional settings file and PYVSGEN_*
// environment variables, falling back to defaults. A missing settings file
// is not an error.
func Load() (*Settings, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return loadFrom(filepath.Join(cfgDir, SettingsFileName), cfgDir)
}

// loadFrom is the injectable core of Load, used directly by tests.
func loadFrom(settingsPath, cfgDir string) (*Settings, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("parallel", defaults.Parallel)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("fail_fast", defaults.FailFast)
	v.SetDefault("registry_path", defaults.RegistryPath)

	v.SetEnvPrefix("PYVSGEN")
	for _, key := range []string{"parallel", "workers", "fail_fast", "registry_path"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if fileExists(settingsPath) {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file %s: %w", settingsPath, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	if s.Workers <= 0 {
		s.Workers = defaults.Workers
	}
	if s.RegistryPath == "" {
		s.RegistryPath = filepath.Join(cfgDir, RegistryFileName)
	}

	return &s, nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
