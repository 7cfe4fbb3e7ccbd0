// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the AppCadastro configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appDir    = "appcadastro"
	fileName  = "appcadastro"
	envPrefix = "appcadastro"
)

// Config is the full application configuration.
type Config struct {
	// GuestName replaces a blank user name on login.
	GuestName string `mapstructure:"guest-name" yaml:"guest-name"`
	// DefaultUserName is shown on home when no user name was carried.
	DefaultUserName string `mapstructure:"default-user-name" yaml:"default-user-name"`

	Log struct {
		File  string `mapstructure:"file" yaml:"file"`
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`

	UI struct {
		AltScreen   bool `mapstructure:"alt-screen" yaml:"alt-screen"`
		CursorBlink bool `mapstructure:"cursor-blink" yaml:"cursor-blink"`
	} `mapstructure:"ui" yaml:"ui"`
}

// Defaults returns the built-in configuration values keyed like the file.
func Defaults() map[string]any {
	return map[string]any{
		"guest-name":        "convidado",
		"default-user-name": "Usuário",
		"log.file":          "",
		"log.level":         "info",
		"ui.alt-screen":     true,
		"ui.cursor-blink":   true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "AppCadastro")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appDir
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appDir)
	}

	return filepath.Join(configDir, fileName+".yaml"), nil
}

// LoadConfig resolves T from defaults, the config file, the environment and
// the flags of cmd, in increasing order of precedence. A missing config file
// is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. file search paths, an explicit file wins
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 3. read the file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	// 4. environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 5. flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("could not bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile writes c to the user or system config path and returns
// the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("could not encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("could not write config file %s: %w", path, err)
	}

	return path, nil
}
