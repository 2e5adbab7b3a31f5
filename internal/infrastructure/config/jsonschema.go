package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fmfau/fmfau-desktop/internal/domain/build"
	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"
)

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(build.RepoURL() + "/config.schema.json")
	schema.Title = "fmfau-desktop configuration"
	schema.Description = "Configuration schema for the fmfau-desktop kiosk shell"
	return schema
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the schema to path.
func WriteSchemaFile(path string) error {
	data, err := SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg the way it would appear in config.toml.
func EncodeTOML(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
