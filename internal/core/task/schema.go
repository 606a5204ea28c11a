package task

import (
	_ "embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task_schema.json
var responseSchemaJSON string

var responseSchema = jsonschema.MustCompileString("task_schema.json", responseSchemaJSON)

// validateResponse checks an adapter response mapping against the embedded
// schema. The mapping comes from a YAML decode, so it is round-tripped
// through JSON to normalize value types before validation.
func validateResponse(fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("normalize response: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("normalize response: %w", err)
	}

	if err := responseSchema.Validate(doc); err != nil {
		return err
	}
	return nil
}
