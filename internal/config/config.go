package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"invoicegen/internal/logger"
)

type Config struct {
	// Storage Configuration
	DataDir   string `mapstructure:"invoice_data_dir"`
	OutputDir string `mapstructure:"invoice_output_dir"`

	// Logging Configuration
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	LogTimeFormat string `mapstructure:"log_time_format"`
	LogOutput     string `mapstructure:"log_output"`
}

// Load reads configuration from the environment and, when configFile is not
// empty, from that file. Environment variables win over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("invoice_data_dir", defaultDataDir())
	v.SetDefault("invoice_output_dir", ".")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_time_format", "2006-01-02T15:04:05Z07:00")
	v.SetDefault("log_output", "stderr")
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("INVOICE_DATA_DIR is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("INVOICE_OUTPUT_DIR is required")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func defaultDataDir() string {
	return filepath.Join(".", ".invoicegen")
}
