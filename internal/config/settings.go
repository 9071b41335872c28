package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CUTECOSMIC_LOG_FILE.
const EnvPrefix = "CUTECOSMIC"

// SettingsFilename is looked up in $XDG_CONFIG_HOME/cutecosmic.
const SettingsFilename = "cutecosmic"

// Settings holds runtime settings for the library and the CLI. They only
// control where things are read from and how they are logged.
type Settings struct {
	// ConfigDir overrides the user cosmic-config root (~/.config/cosmic).
	ConfigDir string `mapstructure:"config_dir"`
	// SystemDirs overrides the system cosmic-config roots.
	SystemDirs []string `mapstructure:"system_dirs"`
	// Mode is the default theme mode for the CLI: system, dark or light.
	Mode string      `mapstructure:"mode"`
	Log  LogSettings `mapstructure:"log"`
}

// LogSettings configures internal/logging.
type LogSettings struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// SettingsDir returns $XDG_CONFIG_HOME/cutecosmic or ~/.config/cutecosmic.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cutecosmic")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "cutecosmic")
}

// NewViper returns a viper instance with defaults, environment overrides
// and the settings file search path configured.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("config_dir", "")
	v.SetDefault("system_dirs", []string{})
	v.SetDefault("mode", "system")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(SettingsFilename)
	v.SetConfigType("yaml")
	v.AddConfigPath(SettingsDir())

	return v
}

// LoadSettings reads the settings file (if any) and decodes all settings.
// A missing settings file is not an error.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	return s, nil
}

// Store returns the cosmic-config store these settings point at.
func (s Settings) Store() *Store {
	userDir := s.ConfigDir
	if userDir == "" {
		userDir = UserDir()
	}

	systemDirs := s.SystemDirs
	if len(systemDirs) == 0 {
		systemDirs = SystemDirs()
	}

	return NewStore(userDir, systemDirs)
}
