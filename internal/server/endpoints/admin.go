package endpoints

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/internal/pack"
	"github.com/Miladattar/content-craft-persian/internal/svcctx"
)

// authorized checks the shared admin credential passed as the "key" query
// parameter. An unconfigured credential disables the admin surface
// entirely. The check runs before any pack access.
func authorized(r *http.Request) bool {
	cfgMgr := svcctx.ConfigFrom(r.Context())
	if cfgMgr == nil {
		return false
	}
	password := cfgMgr.Get().AdminPassword()
	if password == "" {
		return false
	}
	key := r.URL.Query().Get("key")
	return subtle.ConstantTimeCompare([]byte(key), []byte(password)) == 1
}

func adminPath(path, key string) string {
	return path + "?key=" + url.QueryEscape(key)
}

// hookExists reports whether a bank holds a hook with the given ID.
func hookExists(p pack.PromptPack, template, id string) bool {
	for _, h := range p.Hooks[template] {
		if h.ID == id {
			return true
		}
	}
	return false
}

// adminKeyFlag wires the shared --key flag, falling back to the
// CONTENTCRAFT_ADMIN_PASSWORD environment variable.
func adminKeyFlag(cmd *cobra.Command, key *string) {
	cmd.Flags().StringVar(key, "key", os.Getenv("CONTENTCRAFT_ADMIN_PASSWORD"), "Admin credential")
}

// UpdatePromptsResponse is the response for a pack update.
type UpdatePromptsResponse struct {
	OK      bool            `json:"ok"`
	Updated pack.PromptPack `json:"updated"`
}

// GetPromptsEndpoint handles GET /api/admin/prompts.
type GetPromptsEndpoint struct{}

func (e *GetPromptsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/admin/prompts", e.handler
}

func (e *GetPromptsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	packs := svcctx.PacksFrom(r.Context())
	p, err := packs.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (e *GetPromptsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the active prompt pack",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp pack.PromptPack
			if err := client.Get(cmd.Context(), adminPath("/api/admin/prompts", key), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	adminKeyFlag(cmd, &key)
	return cmd
}

// UpdatePromptsEndpoint handles POST /api/admin/prompts.
type UpdatePromptsEndpoint struct{}

func (e *UpdatePromptsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/admin/prompts", e.handler
}

func (e *UpdatePromptsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var patch pack.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	packs := svcctx.PacksFrom(r.Context())
	updated, err := packs.ApplyPatch(patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, UpdatePromptsResponse{OK: true, Updated: updated})
}

func (e *UpdatePromptsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var key, file string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Merge a partial prompt pack into the runtime pack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var patch pack.Patch
			if err := json.Unmarshal(data, &patch); err != nil {
				return fmt.Errorf("invalid patch JSON: %w", err)
			}
			client := api.NewClient(getServerURL())
			var resp UpdatePromptsResponse
			if err := client.Post(cmd.Context(), adminPath("/api/admin/prompts", key), patch, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	adminKeyFlag(cmd, &key)
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON file with the partial pack")
	return cmd
}

// HookRequest is the request body for adding a hook to a template bank.
type HookRequest struct {
	ID     string   `json:"id,omitempty"`
	Text   string   `json:"text"`
	Tone   string   `json:"tone,omitempty"`
	Form   string   `json:"form,omitempty"`
	Lang   string   `json:"lang,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// HookPatch is the request body for updating a hook; nil fields are left
// unchanged.
type HookPatch struct {
	Text   *string   `json:"text,omitempty"`
	Tone   *string   `json:"tone,omitempty"`
	Form   *string   `json:"form,omitempty"`
	Lang   *string   `json:"lang,omitempty"`
	Tags   *[]string `json:"tags,omitempty"`
	Active *bool     `json:"active,omitempty"`
}

// HookResponse wraps a single hook.
type HookResponse struct {
	OK       bool      `json:"ok"`
	Template string    `json:"template"`
	Hook     pack.Hook `json:"hook"`
}

// AddHookEndpoint handles POST /api/admin/hooks/{template}.
type AddHookEndpoint struct{}

func (e *AddHookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/admin/hooks/{template}", e.handler
}

func (e *AddHookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	template := r.PathValue("template")
	var req HookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "hook text is required")
		return
	}

	hook := pack.Hook{
		ID:     req.ID,
		Text:   req.Text,
		Tone:   req.Tone,
		Form:   req.Form,
		Lang:   req.Lang,
		Tags:   req.Tags,
		Active: req.Active,
	}
	if hook.ID == "" {
		hook.ID = uuid.New().String()
	}

	packs := svcctx.PacksFrom(r.Context())
	_, err := packs.Set(func(p pack.PromptPack) pack.PromptPack {
		if p.Hooks == nil {
			p.Hooks = map[string][]pack.Hook{}
		}
		p.Hooks[template] = append(p.Hooks[template], hook)
		p.Version++
		p.UpdatedAt = time.Now().UTC()
		return p
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, HookResponse{OK: true, Template: template, Hook: hook})
}

func (e *AddHookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var key, text, tone, form string
	cmd := &cobra.Command{
		Use:   "add <template>",
		Short: "Add a hook to a template bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				return fmt.Errorf("--text is required")
			}
			client := api.NewClient(getServerURL())
			var resp HookResponse
			path := adminPath("/api/admin/hooks/"+url.PathEscape(args[0]), key)
			if err := client.Post(cmd.Context(), path, HookRequest{Text: text, Tone: tone, Form: form}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	adminKeyFlag(cmd, &key)
	cmd.Flags().StringVar(&text, "text", "", "Hook text (required)")
	cmd.Flags().StringVar(&tone, "tone", "", "Hook tone")
	cmd.Flags().StringVar(&form, "form", "", "Hook form (reels, post, ...)")
	return cmd
}

// UpdateHookEndpoint handles PATCH /api/admin/hooks/{template}/{id}.
type UpdateHookEndpoint struct{}

func (e *UpdateHookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PATCH", "/api/admin/hooks/{template}/{id}", e.handler
}

func (e *UpdateHookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	template := r.PathValue("template")
	id := r.PathValue("id")

	var patch HookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	packs := svcctx.PacksFrom(r.Context())
	cur, err := packs.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// Resolve the hook before Set so a miss never persists the pack.
	if !hookExists(cur, template, id) {
		writeError(w, http.StatusNotFound, "hook not found")
		return
	}

	var updated pack.Hook
	found := false
	_, err = packs.Set(func(p pack.PromptPack) pack.PromptPack {
		bank := p.Hooks[template]
		for i := range bank {
			if bank[i].ID != id {
				continue
			}
			if patch.Text != nil {
				bank[i].Text = *patch.Text
			}
			if patch.Tone != nil {
				bank[i].Tone = *patch.Tone
			}
			if patch.Form != nil {
				bank[i].Form = *patch.Form
			}
			if patch.Lang != nil {
				bank[i].Lang = *patch.Lang
			}
			if patch.Tags != nil {
				bank[i].Tags = *patch.Tags
			}
			if patch.Active != nil {
				bank[i].Active = patch.Active
			}
			updated = bank[i]
			found = true
			p.Version++
			p.UpdatedAt = time.Now().UTC()
			break
		}
		return p
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "hook not found")
		return
	}
	writeJSON(w, http.StatusOK, HookResponse{OK: true, Template: template, Hook: updated})
}

func (e *UpdateHookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var key, text string
	var deactivate bool
	cmd := &cobra.Command{
		Use:   "update <template> <id>",
		Short: "Update a hook in a template bank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := HookPatch{}
			if text != "" {
				patch.Text = &text
			}
			if deactivate {
				f := false
				patch.Active = &f
			}
			client := api.NewClient(getServerURL())
			var resp HookResponse
			path := adminPath("/api/admin/hooks/"+url.PathEscape(args[0])+"/"+url.PathEscape(args[1]), key)
			if err := client.Patch(cmd.Context(), path, patch, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	adminKeyFlag(cmd, &key)
	cmd.Flags().StringVar(&text, "text", "", "New hook text")
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "Mark the hook inactive")
	return cmd
}

// DeleteHookEndpoint handles DELETE /api/admin/hooks/{template}/{id}.
type DeleteHookEndpoint struct{}

func (e *DeleteHookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/admin/hooks/{template}/{id}", e.handler
}

func (e *DeleteHookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	template := r.PathValue("template")
	id := r.PathValue("id")

	packs := svcctx.PacksFrom(r.Context())
	cur, err := packs.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !hookExists(cur, template, id) {
		writeError(w, http.StatusNotFound, "hook not found")
		return
	}

	found := false
	_, err = packs.Set(func(p pack.PromptPack) pack.PromptPack {
		bank := p.Hooks[template]
		kept := bank[:0]
		for _, h := range bank {
			if h.ID == id {
				found = true
				continue
			}
			kept = append(kept, h)
		}
		if found {
			p.Hooks[template] = kept
			p.Version++
			p.UpdatedAt = time.Now().UTC()
		}
		return p
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "hook not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (e *DeleteHookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "delete <template> <id>",
		Short: "Delete a hook from a template bank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := adminPath("/api/admin/hooks/"+url.PathEscape(args[0])+"/"+url.PathEscape(args[1]), key)
			return client.Delete(cmd.Context(), path)
		},
	}
	adminKeyFlag(cmd, &key)
	return cmd
}
