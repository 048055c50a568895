// Package config loads and validates the mdtranslate configuration file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DocsDir is the root of the documentation tree to scan.
	DocsDir string `yaml:"docs_dir"`

	// DefaultLanguage is the source language; files named
	// name.<default_language>.md are treated as translation sources.
	DefaultLanguage string `yaml:"default_language"`

	// Languages lists every site language including the default. Targets are
	// all entries other than the default.
	Languages []string `yaml:"languages"`

	// Theme selects the notice template ("material" or "default").
	Theme string `yaml:"theme,omitempty"`

	// TranslationService names the backend: simpleen, deepl or saia.
	TranslationService string `yaml:"translation_service"`

	// TranslationServiceAPIKey is the backend credential. An empty value is
	// not an error: it switches the tool into "translation disabled" mode so
	// a build without credentials still succeeds.
	TranslationServiceAPIKey string `yaml:"translation_service_api_key"`

	// TranslationServiceBaseURL overrides the backend endpoint, for
	// self-hosted or proxied deployments. Empty uses the provider default.
	TranslationServiceBaseURL string `yaml:"translation_service_base_url,omitempty"`

	// RequestTimeout bounds a single translation call, in Go duration
	// syntax (e.g. "90s"). Empty means DefaultRequestTimeout.
	RequestTimeout string `yaml:"request_timeout,omitempty"`
}

// DefaultRequestTimeout bounds one translation call when the config does not
// set one. LLM-backed services routinely take tens of seconds per document.
const DefaultRequestTimeout = 2 * time.Minute

// Load reads, expands and validates configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand ${VAR} references so credentials can live in the environment.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "default"
	}
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))
	for i, lang := range c.Languages {
		c.Languages[i] = strings.ToLower(strings.TrimSpace(lang))
	}
}

// Validate checks structural config invariants. Service-specific checks
// (backend name, credential) happen in the translate package so the closed
// set of backends is defined in exactly one place.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir must be set")
	}
	if c.DefaultLanguage == "" {
		return fmt.Errorf("default_language must be set")
	}
	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("invalid default_language %q: %w", c.DefaultLanguage, err)
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("languages must list at least the default language")
	}
	for _, lang := range c.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("invalid language %q: %w", lang, err)
		}
	}
	if len(c.TargetLanguages()) == 0 {
		return fmt.Errorf("languages must include at least one language besides the default")
	}
	if c.TranslationService == "" {
		return fmt.Errorf("translation_service must be set")
	}
	if c.RequestTimeout != "" {
		if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
			return fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
		}
	}
	return nil
}

// Timeout returns the parsed request timeout, or DefaultRequestTimeout when
// unset. Validate has already rejected malformed values.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// TargetLanguages returns every configured language except the default.
func (c *Config) TargetLanguages() []string {
	targets := make([]string, 0, len(c.Languages))
	for _, lang := range c.Languages {
		if lang != c.DefaultLanguage {
			targets = append(targets, lang)
		}
	}
	return targets
}

// loadEnvFiles loads the first available .env file. Existing process
// environment variables are never overwritten.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			return
		}
	}
}
