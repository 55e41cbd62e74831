package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode renders cfg in the given format. JSON uses a two-space indent and
// ends with a newline.
func Encode(cfg *domain.TableConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// Write stores cfg as JSON at path, truncating any existing file.
func Write(path string, cfg *domain.TableConfig) error {
	data, err := Encode(cfg, FormatJSON)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Read loads a table configuration. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func Read(path string) (*domain.TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg domain.TableConfig
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return &cfg, nil
}
