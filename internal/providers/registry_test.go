package providers

import (
	"context"
	"testing"
)

func TestRegistryReload(t *testing.T) {
	r := NewRegistry()

	if r.Configured() {
		t.Fatal("empty registry should not be configured")
	}

	r.Reload(LLMProviderConfig{Type: "openrouter", APIKey: "k", Model: "m"})
	if !r.Configured() {
		t.Fatal("expected client after reload")
	}
	if _, ok := r.Client().(*OpenRouterClient); !ok {
		t.Fatalf("expected OpenRouterClient, got %T", r.Client())
	}

	r.Reload(LLMProviderConfig{Type: "openai", APIKey: "k", Model: "gpt-4o"})
	if _, ok := r.Client().(*OpenAIClient); !ok {
		t.Fatalf("expected OpenAIClient after type change, got %T", r.Client())
	}

	// Removing the key drops the client.
	r.Reload(LLMProviderConfig{Type: "openai", Model: "gpt-4o"})
	if r.Configured() {
		t.Fatal("expected no client without API key")
	}
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()
	r.Reload(LLMProviderConfig{Type: "does-not-exist", APIKey: "k"})
	if r.Configured() {
		t.Fatal("unknown provider type should not register")
	}
}

func TestRegistryDefaultsToOpenRouter(t *testing.T) {
	r := NewRegistry()
	r.Reload(LLMProviderConfig{APIKey: "k"})
	if _, ok := r.Client().(*OpenRouterClient); !ok {
		t.Fatalf("expected OpenRouterClient for empty type, got %T", r.Client())
	}
}

func TestMockClientRecordsRequests(t *testing.T) {
	mock := NewMockClient()
	mock.ResponseText = `{"script":"متن"}`

	res, err := mock.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "بنویس"}},
		Model:    "test-model",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Content != `{"script":"متن"}` {
		t.Errorf("Content = %q", res.Content)
	}
	if mock.RequestCount() != 1 {
		t.Errorf("RequestCount = %d", mock.RequestCount())
	}
	if got := mock.LastRequest(); got == nil || got.Model != "test-model" {
		t.Errorf("LastRequest = %+v", got)
	}
}
