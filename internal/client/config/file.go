package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/sitekeeper/internal/flagx"
	"github.com/dmitrijs2005/sitekeeper/internal/timex"
)

// fileConfig is the on-disk shape of the config, shared by the JSON and YAML
// loaders. Pointers tell "absent" from "zero"; durations accept "30s" or
// integer nanoseconds.
type fileConfig struct {
	DataDir        *string         `json:"data_dir" yaml:"data_dir"`
	DBFile         *string         `json:"db_file" yaml:"db_file"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogBackend     *string         `json:"log_backend" yaml:"log_backend"`
	GenAIAPIKey    *string         `json:"genai_api_key" yaml:"genai_api_key"`
	GenAIModel     *string         `json:"genai_model" yaml:"genai_model"`
	MapsAPIKey     *string         `json:"maps_api_key" yaml:"maps_api_key"`
	LocatorURL     *string         `json:"locator_url" yaml:"locator_url"`
	Latitude       *float64        `json:"latitude" yaml:"latitude"`
	Longitude      *float64        `json:"longitude" yaml:"longitude"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// parseFile overlays cfg with the file named by -c or -config. The format
// follows the extension: .yaml/.yml is YAML, anything else JSON.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	fc, err := readFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.DBFile, fc.DBFile)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.GenAIAPIKey, fc.GenAIAPIKey)
	setString(&cfg.GenAIModel, fc.GenAIModel)
	setString(&cfg.MapsAPIKey, fc.MapsAPIKey)
	setString(&cfg.LocatorURL, fc.LocatorURL)
	if fc.Latitude != nil && fc.Longitude != nil {
		cfg.Latitude, cfg.Longitude, cfg.HasPosition = *fc.Latitude, *fc.Longitude, true
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
