package config

import (
	"fmt"
	"os"

	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rules"

	"gopkg.in/yaml.v3"
)

// Config represents the codemend.yaml configuration.
type Config struct {
	Server     ServerConfig                  `yaml:"server"`
	Backup     BackupConfig                  `yaml:"backup"`
	Extensions map[string]string             `yaml:"extensions"` // ".py" -> "Python"
	Rules      map[string][]rules.Definition `yaml:"rules"`      // language name -> extra rules
}

// ServerConfig controls the HTTP service wrapper.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// BackupConfig controls the one-shot backup written before on-disk fixes.
type BackupConfig struct {
	Suffix string `yaml:"suffix"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":5000",
		},
		Backup: BackupConfig{
			Suffix: ".bak",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":5000"
	}
	if cfg.Backup.Suffix == "" {
		cfg.Backup.Suffix = ".bak"
	}

	return cfg, nil
}

// ExtraRules converts the config's rule section to catalog definitions.
// An unknown language name is a configuration error, caught at startup.
func (c *Config) ExtraRules() (map[findings.Language][]rules.Definition, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	out := make(map[findings.Language][]rules.Definition, len(c.Rules))
	for name, defs := range c.Rules {
		lang, ok := findings.ParseLanguage(name)
		if !ok {
			return nil, fmt.Errorf("rules: unknown language %q", name)
		}
		out[lang] = append(out[lang], defs...)
	}
	return out, nil
}

// LanguageForFile resolves a file extension to a language, letting the
// extensions section override the built-in mapping.
func (c *Config) LanguageForFile(ext string) (findings.Language, bool) {
	if name, ok := c.Extensions[ext]; ok {
		return findings.ParseLanguage(name)
	}
	return findings.FromExtension(ext)
}
