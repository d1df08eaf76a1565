package main

import (
	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/internal/server/endpoints"
)

var serverURL string

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Public endpoints become flat subcommands of "api".
	registry := api.NewRegistry()
	for _, ep := range endpoints.Public() {
		registry.Register(ep)
	}
	apiCmd := registry.BuildCommands(getServerURL)

	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8787", "Server URL",
	)

	// Admin endpoints as subcommand group (prompts, hooks)
	apiCmd.AddCommand(endpoints.AdminCommand(getServerURL))

	rootCmd.AddCommand(apiCmd)
}
