// Package pack manages the prompt pack: the versioned bundle of global
// instructions, per-template prompt bodies, and hook banks that drives
// content generation.
//
// The pack has two layers:
//   - an embedded default document (read-only seed, compiled into the binary)
//   - a runtime JSON document on disk that overrides the default once an
//     administrator has written it
//
// Reads on the generation path never mutate the pack; the only writer is
// the admin surface, which goes through Store.Set.
package pack

import "time"

// PromptPack is the versioned prompt configuration.
type PromptPack struct {
	Version   int                 `json:"version"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Globals   Globals             `json:"globals"`
	Templates map[string]Template `json:"templates"`
	Hooks     map[string][]Hook   `json:"hooks"`
}

// Globals holds instructions applied to every template.
type Globals struct {
	System     string   `json:"system"`
	Guardrails []string `json:"guardrails"`
}

// Template is the prompt body for one content template. User contains
// {{brief}}, {{idea}} and {{hooks}} placeholders substituted at assembly.
type Template struct {
	System string `json:"system"`
	User   string `json:"user"`
	Notes  string `json:"notes,omitempty"`
}

// Hook is a short reusable phrase that seeds generation for a template.
type Hook struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Tone   string   `json:"tone,omitempty"`
	Form   string   `json:"form,omitempty"`
	Lang   string   `json:"lang,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// IsActive reports whether the hook participates in selection.
// An absent active flag means active.
func (h Hook) IsActive() bool {
	return h.Active == nil || *h.Active
}

// Patch is a partial pack update posted by an administrator. Nil fields are
// left untouched; maps replace whole per-key entries.
type Patch struct {
	Version   *int                `json:"version,omitempty"`
	Globals   *Globals            `json:"globals,omitempty"`
	Templates map[string]Template `json:"templates,omitempty"`
	Hooks     map[string][]Hook   `json:"hooks,omitempty"`
}

// Apply merges the patch over prev and returns the next pack. The version
// is taken from the patch when given, otherwise bumped by one; updatedAt is
// always set to now.
func (p Patch) Apply(prev PromptPack, now time.Time) PromptPack {
	next := prev.clone()
	if p.Globals != nil {
		next.Globals = *p.Globals
	}
	for key, tpl := range p.Templates {
		next.Templates[key] = tpl
	}
	for key, hooks := range p.Hooks {
		next.Hooks[key] = hooks
	}
	if p.Version != nil {
		next.Version = *p.Version
	} else {
		next.Version = prev.Version + 1
	}
	next.UpdatedAt = now
	return next
}

// clone returns a copy with fresh maps so updates never alias a pack a
// concurrent reader may hold.
func (p PromptPack) clone() PromptPack {
	next := p
	next.Templates = make(map[string]Template, len(p.Templates))
	for k, v := range p.Templates {
		next.Templates[k] = v
	}
	next.Hooks = make(map[string][]Hook, len(p.Hooks))
	for k, v := range p.Hooks {
		hooks := make([]Hook, len(v))
		copy(hooks, v)
		next.Hooks[k] = hooks
	}
	if p.Globals.Guardrails != nil {
		next.Globals.Guardrails = append([]string(nil), p.Globals.Guardrails...)
	}
	return next
}
