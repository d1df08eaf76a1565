// Package schema holds the output contract for every content template: one
// JSON Schema document per template kind, compiled once at startup.
//
// The schema a response is validated against is chosen explicitly by the
// template identifier the client selected, never inferred from which
// fields happen to be present in the model output.
package schema

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Ideas is the shape of the bulk-ideas (backlog) response.
const ideasDoc = `{
	"type": "object",
	"required": ["items"],
	"properties": {
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title"],
				"properties": {
					"n": {"type": "number"},
					"title": {"type": "string"},
					"format": {"type": "string"},
					"score": {"type": "number"}
				}
			}
		}
	}
}`

// genericScriptDoc accepts any script-shaped output. It is the fallback for
// template keys without a dedicated schema; every field is optional but
// typed, matching what the output views can render.
const genericScriptDoc = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string"},
		"technique": {"type": "string"},
		"format": {"type": "string"},
		"blocks": {"type": "object"},
		"hooks": {"type": "string"},
		"beats": {"type": "array", "items": {"type": "string"}},
		"planSilent": {"type": "array", "items": {"type": "string"}},
		"narration": {"type": "array", "items": {"type": "string"}},
		"cta": {"type": "string"}
	}
}`

const scriptOnlyDoc = `{
	"type": "object",
	"required": ["script"],
	"properties": {"script": {"type": "string"}}
}`

// templateDocs maps template identifiers to their dedicated schema
// documents. Script-shaped templates without extra structure share
// scriptOnlyDoc; keys absent here fall back to genericScriptDoc.
var templateDocs = map[string]string{
	"Idea120": `{
		"type": "object",
		"required": ["items"],
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["n", "title"],
					"properties": {
						"n": {"type": "number"},
						"title": {"type": "string"},
						"format": {"type": "string"}
					}
				}
			},
			"assumptions": {"type": "string"},
			"buckets": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["name", "count"],
					"properties": {"name": {"type": "string"}, "count": {"type": "number"}}
				}
			}
		}
	}`,
	"Story": `{
		"type": "object",
		"required": ["hook", "story", "cta"],
		"properties": {
			"hook": {"type": "string"},
			"story": {"type": "string"},
			"cta": {"type": "string"}
		}
	}`,
	"WrongRight": `{
		"type": "object",
		"required": ["wrong_vo", "wrong_plan", "wrong_hook", "right_vo", "right_plan", "right_hook"],
		"properties": {
			"wrong_vo": {"type": "string"},
			"wrong_plan": {"type": "string"},
			"wrong_hook": {"type": "string"},
			"right_vo": {"type": "string"},
			"right_plan": {"type": "string"},
			"right_hook": {"type": "string"}
		}
	}`,
	"NoWords": `{
		"type": "object",
		"required": ["ideas", "hooks"],
		"properties": {
			"ideas": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["shock", "visual", "message", "how"],
					"properties": {
						"shock": {"enum": ["mild", "medium", "hard"]},
						"visual": {"type": "string"},
						"message": {"type": "string"},
						"how": {"type": "string"}
					}
				}
			},
			"hooks": {"type": "array", "items": {"type": "string"}}
		}
	}`,
	"Suspense": `{
		"type": "object",
		"required": ["beats", "script"],
		"properties": {
			"beats": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "text"],
					"properties": {"id": {"type": "number"}, "text": {"type": "string"}}
				}
			},
			"script": {"type": "string"}
		}
	}`,
	"Fortune": `{
		"type": "object",
		"required": ["checks", "summary"],
		"properties": {
			"checks": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["sign", "scene", "meaning", "instant_test"],
					"properties": {
						"sign": {"type": "string"},
						"scene": {"type": "string"},
						"meaning": {"type": "string"},
						"instant_test": {"type": "string"}
					}
				}
			},
			"summary": {"type": "string"}
		}
	}`,
	"ToDo": `{
		"type": "object",
		"required": ["goal", "step1", "closing"],
		"properties": {
			"goal": {"type": "string"},
			"closing": {"type": "string"}
		}
	}`,
	"Compare": `{
		"type": "object",
		"required": ["script"],
		"properties": {
			"script": {"type": "string"},
			"criteria": {"type": "array", "items": {"type": "string"}}
		}
	}`,
	"VisualExample": `{
		"type": "object",
		"required": ["script"],
		"properties": {
			"script": {"type": "string"},
			"tools": {"type": "array", "items": {"type": "string"}}
		}
	}`,
	"Limit":     scriptOnlyDoc,
	"Contrast":  scriptOnlyDoc,
	"ProNovice": scriptOnlyDoc,
	"Warning":   scriptOnlyDoc,
	"Review":    scriptOnlyDoc,
	"Empathy":   scriptOnlyDoc,
	"Choice":    scriptOnlyDoc,
	"PainDiscovery-edu": `{
		"type": "object",
		"properties": {
			"ideas": {"type": "array", "items": {"type": "string"}},
			"script": {"type": "string"}
		}
	}`,
}

var (
	ideasSchema         *jsonschema.Schema
	genericScriptSchema *jsonschema.Schema
	templateSchemas     map[string]*jsonschema.Schema
)

func init() {
	// The PainDiscovery variants share one shape.
	templateDocs["PainDiscovery-service"] = templateDocs["PainDiscovery-edu"]
	templateDocs["PainDiscovery-product"] = templateDocs["PainDiscovery-edu"]

	ideasSchema = mustCompile("ideas.json", ideasDoc)
	genericScriptSchema = mustCompile("script.json", genericScriptDoc)

	templateSchemas = make(map[string]*jsonschema.Schema, len(templateDocs))
	for key, doc := range templateDocs {
		templateSchemas[key] = mustCompile(key+".json", doc)
	}
}

// Ideas returns the schema for the bulk-ideas response.
func Ideas() *jsonschema.Schema {
	return ideasSchema
}

// ForTemplate returns the output schema for a template identifier. Unknown
// keys get the generic script schema.
func ForTemplate(key string) *jsonschema.Schema {
	if s, ok := templateSchemas[key]; ok {
		return s
	}
	return genericScriptSchema
}

// mustCompile compiles an embedded schema document. The documents are
// static; a failure here is a programming error caught by the package tests.
func mustCompile(name, doc string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, strings.NewReader(doc)); err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	s, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return s
}
