// Package config persists the LLM model profiles the cliff CLI talks to,
// along with the default and current model selection.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Provider names selecting the request backend for a model.
const (
	ProviderTemplate = "template"
	ProviderOpenAI   = "openai"
)

// ErrNoModels is returned when a command needs a model but neither a
// current nor a default selection resolves to a configured one.
var ErrNoModels = errors.New("no LLM model configured")

// Model is one configured LLM endpoint. RequestFormat and ResponseJSONPath
// drive the template provider; the openai provider only needs APIURL, APIKey
// and ModelIdentifier. Empty string means unset.
type Model struct {
	Name             string `mapstructure:"name" yaml:"name"`
	APIURL           string `mapstructure:"api_url" yaml:"api_url"`
	APIKey           string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	APIKeyHeader     string `mapstructure:"api_key_header" yaml:"api_key_header,omitempty"`
	ModelIdentifier  string `mapstructure:"model_identifier" yaml:"model_identifier,omitempty"`
	RequestFormat    string `mapstructure:"request_format" yaml:"request_format,omitempty"`
	ResponseJSONPath string `mapstructure:"response_json_path" yaml:"response_json_path,omitempty"`
	Provider         string `mapstructure:"provider" yaml:"provider,omitempty"`
}

// Config holds all configured models plus the default and the current
// (session override) selection, keyed by model name.
type Config struct {
	Models       map[string]Model `mapstructure:"models" yaml:"models"`
	DefaultModel string           `mapstructure:"default_model" yaml:"default_model,omitempty"`
	CurrentModel string           `mapstructure:"current_model" yaml:"current_model,omitempty"`
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "cliff", "config.yaml"), nil
}

// LogsDir returns the directory run transcripts are written to.
func LogsDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "cliff", "logs"), nil
}

// Load reads the config file, returning an empty config when none exists yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := &Config{Models: map[string]Model{}}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Models == nil {
		cfg.Models = map[string]Model{}
	}
	return cfg, nil
}

// Save writes the config file, creating the config directory if needed.
// The file is written with owner-only permissions since it may hold API keys.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// AddModel registers a model under its name, replacing any previous entry.
// The first model added becomes the default.
func (c *Config) AddModel(m Model) {
	if c.Models == nil {
		c.Models = map[string]Model{}
	}
	c.Models[m.Name] = m
	if c.DefaultModel == "" {
		c.DefaultModel = m.Name
	}
}

// SetDefault marks a configured model as the default.
func (c *Config) SetDefault(name string) error {
	if _, ok := c.Models[name]; !ok {
		return fmt.Errorf("model %q not found", name)
	}
	c.DefaultModel = name
	return nil
}

// SetCurrent marks a configured model as the current override.
func (c *Config) SetCurrent(name string) error {
	if _, ok := c.Models[name]; !ok {
		return fmt.Errorf("model %q not found", name)
	}
	c.CurrentModel = name
	return nil
}

// ClearCurrent removes the current override, falling back to the default.
func (c *Config) ClearCurrent() {
	c.CurrentModel = ""
}

// Delete removes a configured model and clears any references to it.
func (c *Config) Delete(name string) error {
	if _, ok := c.Models[name]; !ok {
		return fmt.Errorf("model %q not found", name)
	}
	delete(c.Models, name)
	if c.DefaultModel == name {
		c.DefaultModel = ""
	}
	if c.CurrentModel == name {
		c.CurrentModel = ""
	}
	return nil
}

// ActiveModel resolves the model to use: the current override when set,
// otherwise the default. Returns nil when neither resolves.
func (c *Config) ActiveModel() *Model {
	for _, name := range []string{c.CurrentModel, c.DefaultModel} {
		if name == "" {
			continue
		}
		if m, ok := c.Models[name]; ok {
			return &m
		}
	}
	return nil
}

// ModelNames returns the configured model names in sorted order.
func (c *Config) ModelNames() []string {
	names := make([]string, 0, len(c.Models))
	for name := range c.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
