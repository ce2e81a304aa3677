package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/expect/pkg/expect"
)

// Parse decodes YAML into a Config, starting from expect.DefaultConfig.
func Parse(data []byte) (expect.Config, error) {
	cfg := expect.DefaultConfig()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parse yaml: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, fmt.Errorf("config: build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return expect.DefaultConfig(), fmt.Errorf("config: decode: %w", err)
	}
	if cfg.TruncateThreshold < 0 {
		return expect.DefaultConfig(), fmt.Errorf("config: truncate_threshold must not be negative, got %d", cfg.TruncateThreshold)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (expect.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return expect.DefaultConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Apply loads path and installs the result on r.
func Apply(r *expect.Registry, path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	r.SetConfig(cfg)
	return nil
}
