package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RetryCount     int    `yaml:"retry_count"`
	UserAgent      string `yaml:"user_agent"`
}

func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

type Config struct {
	ListenAddr   string         `yaml:"listen_addr"`
	DatabasePath string         `yaml:"database_path"`
	Upstream     UpstreamConfig `yaml:"upstream"`
}

func Default() *Config {
	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":3000"),
		DatabasePath: getEnv("DATABASE_PATH", "database.db"),
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "https://www.itbox.ua/api/v1"),
			TimeoutSeconds: 30,
			RetryCount:     2,
			UserAgent:      getEnv("UPSTREAM_USER_AGENT", ""),
		},
	}
}

// Load reads the yaml config at filename on top of the defaults. A missing
// file is not an error: the defaults (plus env overrides) are used as-is.
func Load(filename string) (*Config, error) {
	config := Default()

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
