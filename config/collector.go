package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const collectorConfigPathEnv = "COLLECTOR_CONFIG"

// Duration wraps time.Duration so yaml values like "6h" or "30m" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// CollectorConfig drives the background snapshot collector. It lives in a
// yaml file (default collector.yaml) rather than env vars because the
// Product Hunt section nests per-source settings.
type CollectorConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Interval    Duration          `yaml:"interval"`
	GithubToken string            `yaml:"githubToken"`
	ProductHunt ProductHuntConfig `yaml:"producthunt"`
}

type ProductHuntConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// LoadCollectorConfig reads the collector yaml. A missing file is not an
// error; the collector just stays disabled.
func LoadCollectorConfig() (CollectorConfig, error) {
	cfg := CollectorConfig{
		Interval: Duration(6 * time.Hour),
		ProductHunt: ProductHuntConfig{
			URL: "https://www.producthunt.com/topics/developer-tools",
		},
	}

	path := os.Getenv(collectorConfigPathEnv)
	if path == "" {
		path = "collector.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if cfg.GithubToken == "" {
		cfg.GithubToken = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = Duration(6 * time.Hour)
	}

	return cfg, nil
}
