package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultURL is the public catalog the program rolls against.
const DefaultURL = "https://github.com/codecrafters-io/build-your-own-x/raw/refs/heads/master/README.md"

type Config struct {
	Source struct {
		URL            string  `yaml:"url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RateLimit      float64 `yaml:"rate_limit"`
	} `yaml:"source"`

	Roll struct {
		DelayMs int   `yaml:"delay_ms"`
		Seed    int64 `yaml:"seed"`
	} `yaml:"roll"`

	UI struct {
		Fast    bool `yaml:"fast"`
		NoColor bool `yaml:"no_color"`
	} `yaml:"ui"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.Roll.DelayMs) * time.Millisecond
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"roll.yaml",
			"roll.yml",
			filepath.Join(os.Getenv("HOME"), ".config/rollthetech/config.yaml"),
			"/etc/rollthetech/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Source.URL == "" {
		config.Source.URL = DefaultURL
	}
	if config.Source.TimeoutSeconds == 0 {
		config.Source.TimeoutSeconds = 30
	}
	if config.Source.RateLimit == 0 {
		config.Source.RateLimit = 2.0
	}

	if config.Roll.DelayMs == 0 {
		config.Roll.DelayMs = 500
	}
}

func mergeWithEnv(config *Config) {
	if sourceURL := os.Getenv("ROLL_SOURCE_URL"); sourceURL != "" {
		config.Source.URL = sourceURL
	}
	if os.Getenv("NO_COLOR") != "" {
		config.UI.NoColor = true
	}
}
