package profile

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ToJSONSchema returns the JSON schema of the profile document, used by
// external tooling to validate and auto-complete profile files.
func ToJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Profile{})

	jsonSchemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
