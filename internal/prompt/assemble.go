// Package prompt assembles model-ready system and user messages from a
// prompt pack and per-request variables.
package prompt

import (
	"encoding/json"
	"strings"

	"github.com/Miladattar/content-craft-persian/internal/pack"
)

// Recognized placeholders in template user bodies.
const (
	PlaceholderBrief = "{{brief}}"
	PlaceholderIdea  = "{{idea}}"
	PlaceholderHooks = "{{hooks}}"
)

// Vars carries the request variables a handler supplies for substitution.
// A nil field means the caller does not own that placeholder and it is left
// untouched in the template text.
type Vars struct {
	Brief any      // serialized as pretty JSON for {{brief}}
	Idea  Fields   // serialized as pretty JSON for {{idea}}
	Hooks []string // newline-joined plain text for {{hooks}}
}

// Messages is an assembled system/user message pair.
type Messages struct {
	System string
	User   string
}

// Assemble builds the messages for templateKey from the pack.
//
// The system message is the global system prompt, each guardrail rendered
// as a "- " bullet, and the template's own system prompt, newline-joined.
// A template missing from the pack contributes empty strings; packs may be
// partial and that is never an error.
//
// Substitution in the user body is a literal first-occurrence string
// replace per placeholder, not a template language. Placeholders absent
// from the template text are simply not substituted.
func Assemble(p pack.PromptPack, templateKey string, vars Vars) Messages {
	tpl := p.Templates[templateKey]

	parts := make([]string, 0, len(p.Globals.Guardrails)+2)
	parts = append(parts, p.Globals.System)
	for _, g := range p.Globals.Guardrails {
		parts = append(parts, "- "+g)
	}
	parts = append(parts, tpl.System)

	user := tpl.User
	if vars.Brief != nil {
		user = strings.Replace(user, PlaceholderBrief, prettyJSON(vars.Brief), 1)
	}
	if vars.Idea != nil {
		user = strings.Replace(user, PlaceholderIdea, prettyJSON(vars.Idea.Sanitized()), 1)
	}
	if vars.Hooks != nil {
		user = strings.Replace(user, PlaceholderHooks, strings.Join(vars.Hooks, "\n"), 1)
	}

	return Messages{
		System: strings.Join(parts, "\n"),
		User:   user,
	}
}

// prettyJSON renders v as 2-space indented JSON so prompts stay readable in
// logs and in the model context. Serialization failures degrade to "{}"
// rather than failing assembly.
func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
