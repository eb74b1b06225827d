// Package config provides configuration management for pamctl using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pamctl/pamctl/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "pamctl"

// Config represents the top-level configuration structure.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version"`
	PAMDir    string `mapstructure:"pam_dir" yaml:"pam_dir"`
	BackupDir string `mapstructure:"backup_dir" yaml:"backup_dir"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support (PAMCTL_PAM_DIR, PAMCTL_BACKUP_DIR)
	viper.SetEnvPrefix("PAMCTL")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("pam_dir", "")
	viper.SetDefault("backup_dir", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ResolvePAMDir returns the configured PAM directory, falling back to the
// privilege-based default when unset.
func (c *Config) ResolvePAMDir() string {
	if c != nil && c.PAMDir != "" {
		return c.PAMDir
	}
	return paths.DefaultConfigDir()
}

// ResolveBackupDir returns the configured backup directory, falling back
// to the default sibling path of the given PAM directory when unset.
func (c *Config) ResolveBackupDir(pamDir string) string {
	if c != nil && c.BackupDir != "" {
		return c.BackupDir
	}
	return paths.DefaultBackupDir(pamDir)
}
