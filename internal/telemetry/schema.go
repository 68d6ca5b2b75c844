package telemetry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed attempt.schema.json
var attemptSchema []byte

const attemptSchemaURL = "schema://attempt.json"

// compiledSchema compiles the embedded schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(attemptSchema, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(attemptSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(attemptSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// Validate checks a record against the attempt schema.
// Returns *InvalidRecordError on failure.
func Validate(rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateJSON(raw)
}

// ValidateJSON checks an encoded record against the attempt schema.
// Returns *InvalidRecordError on failure.
func ValidateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidRecordError{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return &InvalidRecordError{
			Content: raw,
			Err:     fmt.Errorf("compile attempt schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidRecordError{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}
