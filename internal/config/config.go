package config

import (
	"fmt"
	"os"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. The fixture itself (seed, row count,
// schema, sidecar text) is fixed and not configurable.
type Config struct {
	Root     string       `yaml:"root"`
	LogLevel string       `yaml:"log_level"`
	Export   ExportConfig `yaml:"export"`
}

type ExportConfig struct {
	Kind     string `yaml:"kind"`
	DSN      string `yaml:"dsn"`
	Schema   string `yaml:"schema"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
	Mode     string `yaml:"mode"`
}

func Default() *Config {
	return &Config{
		Root:     ".",
		LogLevel: "info",
		Export: ExportConfig{
			Kind:  domain.TargetKindSQLite,
			Table: domain.SampleTableName,
			Mode:  domain.TableModeCreateIfMissing,
		},
	}
}

// LoadFile overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	return cfg, nil
}

func (e ExportConfig) Target() *domain.ExportTarget {
	return &domain.ExportTarget{
		Kind:     e.Kind,
		DSN:      e.DSN,
		Schema:   e.Schema,
		Database: e.Database,
		Table:    e.Table,
		Mode:     e.Mode,
	}
}
