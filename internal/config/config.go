package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is the prefix of environment overrides, e.g. HANDRANK_INPUT_PATH
const EnvPrefix = "handrank"

// Config represents the application configuration
type Config struct {
	InputPath  string `toml:"input_path" envconfig:"input_path"`
	OutputPath string `toml:"output_path" envconfig:"output_path"`
	LogLevel   string `toml:"log_level" envconfig:"log_level"`
	Color      string `toml:"color" envconfig:"color"`
	Detail     bool   `toml:"detail" envconfig:"detail"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		InputPath:  "poker.txt",
		OutputPath: "csis.txt",
		LogLevel:   "info",
		Color:      "auto",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "handrank", "config.toml")
}

// LoadConfig loads the config file and applies environment overrides
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile reads the config file, creating it with defaults if missing
func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(config); err != nil {
		return nil, err
	}

	logrus.WithField("path", GetConfigFilePath()).Debug("created default config")
	return config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}

	return validateColor(c.Color)
}

func validateLogLevel(level string) error {
	if _, err := logrus.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

func validateColor(color string) error {
	switch strings.ToLower(color) {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", color)
	}
}

// setters maps a config key to the function updating it
var setters = map[string]func(*Config, string) error{
	"input_path": func(c *Config, v string) error {
		c.InputPath = v
		return nil
	},
	"output_path": func(c *Config, v string) error {
		c.OutputPath = v
		return nil
	},
	"log_level": func(c *Config, v string) error {
		if err := validateLogLevel(v); err != nil {
			return err
		}
		c.LogLevel = v
		return nil
	},
	"color": func(c *Config, v string) error {
		if err := validateColor(v); err != nil {
			return err
		}
		c.Color = v
		return nil
	},
	"detail": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("detail must be true or false: %w", err)
		}
		c.Detail = b
		return nil
	},
}

// Keys returns the settable config keys
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates one key in the config file. Only the new value is checked, so
// a file with other invalid values can be repaired one key at a time.
// Environment overrides are not written back.
func Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (known: %s)", key, strings.Join(Keys(), ", "))
	}

	config, err := loadFile()
	if err != nil {
		return err
	}

	if err := set(config, value); err != nil {
		return err
	}

	return save(config)
}
