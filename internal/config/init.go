package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes a starter configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		DocsDir:                  "docs",
		DefaultLanguage:          "en",
		Languages:                []string{"en", "de", "fr"},
		Theme:                    "material",
		TranslationService:       "saia",
		TranslationServiceAPIKey: "${TRANSLATION_SERVICE_API_KEY}",
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# mdtranslate configuration\n" +
		"# translation_service: one of simpleen, deepl, saia\n" +
		"# Leave translation_service_api_key empty to disable translation.\n"

	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
