package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/internal/svcctx"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server string     `json:"server"`
	LLM    LLMStatus  `json:"llm"`
	Pack   PackStatus `json:"pack"`
}

// LLMStatus shows whether a generation backend is configured.
type LLMStatus struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider,omitempty"`
}

// PackStatus shows the active prompt-pack version.
type PackStatus struct {
	Version   int    `json:"version"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct{}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Server: "running"}

	if registry := svcctx.RegistryFrom(r.Context()); registry != nil {
		if client := registry.Client(); client != nil {
			resp.LLM.Configured = true
			resp.LLM.Provider = client.Name()
		}
	}

	if packs := svcctx.PacksFrom(r.Context()); packs != nil {
		if p, err := packs.Get(); err == nil {
			resp.Pack.Version = p.Version
			if !p.UpdatedAt.IsZero() {
				resp.Pack.UpdatedAt = p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StatusResponse
			if err := client.Get(cmd.Context(), "/status", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response. Issues and Raw are set only
// for schema-mismatch errors.
type ErrorResponse struct {
	Error  string `json:"error"`
	Issues any    `json:"issues,omitempty"`
	Raw    any    `json:"raw,omitempty"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
