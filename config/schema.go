package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema returns the JSON schema of a config file. Nested types are inlined since two of them
// share the name Config.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	out, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config schema")
	}
	return out, nil
}
