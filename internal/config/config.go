package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lumipallolabs/rms/internal/reveal"
)

// Keys
const (
	KeyAppName      = "app_name"
	KeyLinuxBackend = "linux_backend"
	KeyHistorySize  = "history_size"
	KeyDebug        = "debug"
)

// Config holds the shell settings
type Config struct {
	AppName      string
	LinuxBackend reveal.LinuxBackend
	HistorySize  int
	Debug        bool

	// Dir is the directory holding config.yaml, history and debug.log
	Dir string
	// File is the config file that was read, empty if none
	File string
}

// DefaultDir returns $XDG_CONFIG_HOME/rms (or the platform equivalent)
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".rms"
	}
	return filepath.Join(dir, "rms")
}

// New returns a viper instance with defaults and RMS_ env binding
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAppName, "rms")
	v.SetDefault(KeyLinuxBackend, string(reveal.BackendDBusSend))
	v.SetDefault(KeyHistorySize, 20)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix("RMS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or config.yaml in dir when cfgFile is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, cfgFile, dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		AppName:     v.GetString(KeyAppName),
		HistorySize: v.GetInt(KeyHistorySize),
		Debug:       v.GetBool(KeyDebug),
		Dir:         dir,
		File:        v.ConfigFileUsed(),
	}
	if cfgFile != "" {
		cfg.Dir = filepath.Dir(cfgFile)
	}

	backend, ok := reveal.ParseLinuxBackend(v.GetString(KeyLinuxBackend))
	if !ok {
		return nil, fmt.Errorf("%s: unknown backend %q (want %s or %s)",
			KeyLinuxBackend, v.GetString(KeyLinuxBackend), reveal.BackendDBusSend, reveal.BackendSessionBus)
	}
	cfg.LinuxBackend = backend

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf("%s must not be empty", KeyAppName)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyHistorySize, c.HistorySize)
	}
	return nil
}
