// Package generate orchestrates the content pipeline: pack read, hook
// selection, prompt assembly, model invocation, and response validation.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Miladattar/content-craft-persian/internal/pack"
	"github.com/Miladattar/content-craft-persian/internal/prompt"
	"github.com/Miladattar/content-craft-persian/internal/providers"
	"github.com/Miladattar/content-craft-persian/internal/schema"
	"github.com/Miladattar/content-craft-persian/internal/validate"
)

const (
	// backlogTemplateKey is the template used for bulk idea generation.
	backlogTemplateKey = "Idea120"

	// defaultTone and defaultForm are applied when the request omits them.
	defaultTone = "خودمونی-حرفه‌ای"
	defaultForm = "reels"
)

// SchemaMismatchError reports model output that parsed as JSON but failed
// shape validation. It carries the field-level issues and the raw document
// so the caller can surface both.
type SchemaMismatchError struct {
	Issues []validate.Issue
	Raw    any
}

func (e *SchemaMismatchError) Error() string {
	return "schema mismatch"
}

// Service runs the two generation pipelines. When no LLM client is
// configured it answers with deterministic demo payloads and never touches
// the pack store or the network.
type Service struct {
	packs  *pack.Store
	llm    *providers.Registry
	logger *slog.Logger
}

// NewService creates a generation service.
func NewService(packs *pack.Store, llm *providers.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{packs: packs, llm: llm, logger: logger}
}

// BacklogIdeas generates a bulk idea list from a strategy brief.
func (s *Service) BacklogIdeas(ctx context.Context, strategy map[string]any) (any, error) {
	client := s.llm.Client()
	if client == nil {
		s.logger.Info("no LLM configured, serving demo backlog")
		return DemoBacklog(), nil
	}
	if strategy == nil {
		strategy = map[string]any{}
	}

	p, err := s.packs.Get()
	if err != nil {
		return nil, err
	}

	hooks := pack.SelectHooks(p.Hooks[backlogTemplateKey], "", "", pack.DefaultHookLimit)
	msgs := prompt.Assemble(p, backlogTemplateKey, prompt.Vars{
		Brief: strategy,
		Hooks: hooks,
	})

	raw, err := s.invoke(ctx, msgs)
	if err != nil {
		return nil, err
	}
	return s.finish(raw, schema.Ideas(), backlogTemplateKey)
}

// Script generates a single script for the template named in the idea.
func (s *Service) Script(ctx context.Context, idea prompt.Fields, strategy map[string]any) (any, error) {
	templateKey := idea.Str("template", pack.DefaultTemplateKey)
	if !pack.KnownTemplate(templateKey) {
		// Still served: the generic output schema covers unlisted keys.
		s.logger.Warn("template not in catalog", "template", templateKey)
	}

	client := s.llm.Client()
	if client == nil {
		s.logger.Info("no LLM configured, serving demo script", "template", templateKey)
		return DemoScript(idea), nil
	}
	if strategy == nil {
		strategy = map[string]any{}
	}

	tone := defaultTone
	if t, ok := strategy["tone"].(string); ok && t != "" {
		tone = t
	}
	form := idea.Str("format", defaultForm)

	p, err := s.packs.Get()
	if err != nil {
		return nil, err
	}

	hooks := pack.SelectHooks(p.Hooks[templateKey], tone, form, pack.DefaultHookLimit)
	msgs := prompt.Assemble(p, templateKey, prompt.Vars{
		Brief: strategy,
		Idea:  idea.Sanitized(),
		Hooks: hooks,
	})

	raw, err := s.invoke(ctx, msgs)
	if err != nil {
		return nil, err
	}
	return s.finish(raw, schema.ForTemplate(templateKey), templateKey)
}

func (s *Service) invoke(ctx context.Context, msgs prompt.Messages) (string, error) {
	client := s.llm.Client()
	temperature, maxTokens := s.llm.RequestDefaults()
	res, err := client.Chat(ctx, &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: msgs.System},
			{Role: "user", Content: msgs.User},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	s.logger.Debug("generation complete",
		"provider", res.Provider,
		"model", res.ModelUsed,
		"total_tokens", res.TotalTokens,
		"duration", res.ExecutionTime)
	return res.Content, nil
}

func (s *Service) finish(rawText string, sch *jsonschema.Schema, templateKey string) (any, error) {
	out := validate.Response(rawText, sch)
	if !out.OK {
		s.logger.Warn("model output rejected", "template", templateKey, "issues", len(out.Issues))
		return nil, &SchemaMismatchError{Issues: out.Issues, Raw: out.Raw}
	}
	return out.Value, nil
}
