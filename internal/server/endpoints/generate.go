package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/internal/generate"
	"github.com/Miladattar/content-craft-persian/internal/prompt"
	"github.com/Miladattar/content-craft-persian/internal/svcctx"
)

// BacklogRequest is the request body for bulk idea generation.
type BacklogRequest struct {
	Strategy map[string]any `json:"strategy"`
}

// ScriptRequest is the request body for script generation.
type ScriptRequest struct {
	Idea     prompt.Fields  `json:"idea"`
	Strategy map[string]any `json:"strategy"`
}

// decodeLenient parses a JSON request body, degrading to the zero value on
// a missing or malformed body instead of failing the request.
func decodeLenient(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(v)
}

// writeGenerateResult maps a generation outcome onto the wire: validated
// payloads pass through, schema mismatches become 422 with issues and the
// raw document, everything else is a generic 500.
func writeGenerateResult(w http.ResponseWriter, result any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, result)
		return
	}
	var sme *generate.SchemaMismatchError
	if errors.As(err, &sme) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Schema mismatch",
			Issues: sme.Issues,
			Raw:    sme.Raw,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// BacklogEndpoint handles POST /api/backlog.
type BacklogEndpoint struct{}

func (e *BacklogEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/backlog", e.handler
}

func (e *BacklogEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req BacklogRequest
	decodeLenient(r, &req)

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusInternalServerError, "generator not initialized")
		return
	}

	result, err := gen.BacklogIdeas(r.Context(), req.Strategy)
	writeGenerateResult(w, result, err)
}

func (e *BacklogEndpoint) Command(getServerURL func() string) *cobra.Command {
	var strategyJSON string
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Generate a bulk idea list",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := BacklogRequest{}
			if strategyJSON != "" {
				if err := json.Unmarshal([]byte(strategyJSON), &req.Strategy); err != nil {
					return fmt.Errorf("invalid --strategy JSON: %w", err)
				}
			}
			client := api.NewClient(getServerURL())
			var resp any
			if err := client.Post(cmd.Context(), "/api/backlog", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&strategyJSON, "strategy", "", "Strategy brief as a JSON object")
	return cmd
}

// ScriptEndpoint handles POST /api/script.
type ScriptEndpoint struct{}

func (e *ScriptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/script", e.handler
}

func (e *ScriptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ScriptRequest
	decodeLenient(r, &req)

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusInternalServerError, "generator not initialized")
		return
	}

	result, err := gen.Script(r.Context(), req.Idea, req.Strategy)
	writeGenerateResult(w, result, err)
}

func (e *ScriptEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		template     string
		title        string
		format       string
		strategyJSON string
	)
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate a script for a content template",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ScriptRequest{Idea: prompt.Fields{}}
			if template != "" {
				req.Idea["template"] = template
			}
			if title != "" {
				req.Idea["title"] = title
			}
			if format != "" {
				req.Idea["format"] = format
			}
			if strategyJSON != "" {
				if err := json.Unmarshal([]byte(strategyJSON), &req.Strategy); err != nil {
					return fmt.Errorf("invalid --strategy JSON: %w", err)
				}
			}
			client := api.NewClient(getServerURL())
			var resp any
			if err := client.Post(cmd.Context(), "/api/script", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "Template identifier (default Story)")
	cmd.Flags().StringVar(&title, "title", "", "Idea title")
	cmd.Flags().StringVar(&format, "format", "", "Output format (reels, post, ...)")
	cmd.Flags().StringVar(&strategyJSON, "strategy", "", "Strategy brief as a JSON object")
	return cmd
}
