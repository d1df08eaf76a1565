package providers

import (
	"log/slog"
	"sync"
	"time"
)

// LLMProviderConfig describes the active LLM provider, with the API key
// already resolved.
type LLMProviderConfig struct {
	Type        string // "openrouter", "openai"
	Model       string
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// Registry holds the active LLM client. It supports config-driven
// instantiation and hot-reload, and provides thread-safe access.
//
// An empty API key is a supported state: the service then answers with
// canned demo payloads instead of calling a model.
type Registry struct {
	mu     sync.RWMutex
	client LLMClient
	cfg    LLMProviderConfig
	logger *slog.Logger
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{logger: slog.Default()}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Reload updates the active client based on new configuration. If the
// configuration no longer names a usable provider the client is dropped.
func (r *Registry) Reload(cfg LLMProviderConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg == r.cfg && r.client != nil {
		return
	}

	hadClient := r.client != nil
	r.client = createLLMClient(cfg)
	r.cfg = cfg

	if r.logger == nil {
		return
	}
	switch {
	case r.client != nil && hadClient:
		r.logger.Info("updated LLM client", "type", cfg.Type, "model", cfg.Model)
	case r.client != nil:
		r.logger.Info("registered LLM client", "type", cfg.Type, "model", cfg.Model)
	case hadClient:
		r.logger.Info("unregistered LLM client")
	}
}

// Client returns the active LLM client, or nil when none is configured.
func (r *Registry) Client() LLMClient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.client
}

// RequestDefaults returns the configured sampling parameters for chat
// requests. Zero values leave the provider defaults in place.
func (r *Registry) RequestDefaults() (temperature float64, maxTokens int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Temperature, r.cfg.MaxTokens
}

// Configured reports whether a usable client is registered.
func (r *Registry) Configured() bool {
	return r.Client() != nil
}

// RegisterLLM installs a specific client, bypassing config. Used in tests.
func (r *Registry) RegisterLLM(client LLMClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.client = client
}

// createLLMClient creates an LLM client based on provider type. Returns nil
// when the config is incomplete or names an unknown type.
func createLLMClient(cfg LLMProviderConfig) LLMClient {
	if cfg.APIKey == "" {
		return nil
	}
	switch cfg.Type {
	case "openrouter", "":
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:       cfg.APIKey,
			BaseURL:      cfg.BaseURL,
			DefaultModel: cfg.Model,
			Timeout:      cfg.Timeout,
			MaxRetries:   cfg.MaxRetries,
		})
	case "openai":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:       cfg.APIKey,
			BaseURL:      cfg.BaseURL,
			DefaultModel: cfg.Model,
			Timeout:      cfg.Timeout,
			MaxRetries:   cfg.MaxRetries,
		})
	default:
		return nil
	}
}
