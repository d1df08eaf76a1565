// Package validate checks raw model output against a template's output
// schema and reports structured issues instead of opaque errors.
package validate

import (
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Miladattar/content-craft-persian/internal/extract"
)

// Issue is a single schema violation, addressed by JSON pointer.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Outcome is the result of validating one model response.
type Outcome struct {
	// OK reports whether Value conforms to the schema.
	OK bool
	// Value is the parsed JSON document, nil when no JSON could be
	// extracted from the text.
	Value any
	// Issues is non-empty exactly when OK is false.
	Issues []Issue
	// Raw is the extracted document even when it failed validation, so
	// callers can surface it for debugging.
	Raw any
}

// Response extracts JSON from rawText and validates it against schema.
func Response(rawText string, schema *jsonschema.Schema) Outcome {
	value, err := extract.JSON(rawText)
	if err != nil {
		return Outcome{
			Issues: []Issue{{Path: "", Message: err.Error()}},
		}
	}
	if err := schema.Validate(value); err != nil {
		var issues []Issue
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			issues = flatten(ve)
		} else {
			issues = []Issue{{Path: "", Message: err.Error()}}
		}
		return Outcome{Issues: issues, Raw: value}
	}
	return Outcome{OK: true, Value: value, Raw: value}
}

// flatten walks the validation error tree and keeps only leaf causes; the
// intermediate nodes just restate that a child failed.
func flatten(ve *jsonschema.ValidationError) []Issue {
	if len(ve.Causes) == 0 {
		return []Issue{{Path: ve.InstanceLocation, Message: ve.Message}}
	}
	var issues []Issue
	for _, cause := range ve.Causes {
		issues = append(issues, flatten(cause)...)
	}
	return issues
}
