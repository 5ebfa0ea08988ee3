package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type SourceType string

const (
	SourceTypeFile    SourceType = "file"
	SourceTypeNetwork SourceType = "network"
	SourceTypeMock    SourceType = "mock"
)

type Config struct {
	Sources []Source `yaml:"sources"`
	JSONL   struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"jsonl"`
	Relay struct {
		Codec        string              `yaml:"codec"`
		Destinations []OutputDestination `yaml:"destinations"`
	} `yaml:"relay"`
	StatsServer struct {
		Port int `yaml:"port"`
	} `yaml:"stats_server"`
	InfluxDB struct {
		Host         string `yaml:"host"`
		Token        string `yaml:"token"`
		Organization string `yaml:"organization"`
		Bucket       string `yaml:"bucket"`
	} `yaml:"influxdb"`
	Log Log `yaml:"log"`
}

type Source struct {
	Name        string        `yaml:"name"`
	Type        SourceType    `yaml:"type"`
	Path        string        `yaml:"path"`
	Address     string        `yaml:"address"`
	ReadSize    int           `yaml:"read_size"`
	ReadDelay   time.Duration `yaml:"read_delay"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Codec       string        `yaml:"codec"`
	MaxPayload  uint64        `yaml:"max_payload"`
	Resync      bool          `yaml:"resync"`
	MockRate    int           `yaml:"mock_rate"`
	MockLimit   int           `yaml:"mock_limit"`
}

type OutputDestination struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(contents)
}

func Parse(contents []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(contents, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}
	names := make(map[string]struct{}, len(c.Sources))
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d]: name is required", i)
		}
		if _, ok := names[src.Name]; ok {
			return fmt.Errorf("sources[%d]: duplicate name %q", i, src.Name)
		}
		names[src.Name] = struct{}{}

		switch src.Type {
		case SourceTypeFile:
			if src.Path == "" {
				return fmt.Errorf("source %s: path is required", src.Name)
			}
		case SourceTypeNetwork:
			if src.Address == "" {
				return fmt.Errorf("source %s: address is required", src.Name)
			}
		case SourceTypeMock:
		default:
			return fmt.Errorf("source %s: unknown type %q", src.Name, src.Type)
		}
		if src.ReadTimeout < 0 || src.ReadDelay < 0 {
			return fmt.Errorf("source %s: negative duration", src.Name)
		}
	}
	for i, dest := range c.Relay.Destinations {
		if dest.Host == "" || dest.Port <= 0 {
			return fmt.Errorf("relay.destinations[%d]: host and port are required", i)
		}
	}
	return nil
}
