package main

import (
	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "contentcraft",
	Short: "Persian short-form content generation server",
	Long: `ContentCraft generates Persian marketing content from a brand strategy
using LLM-backed prompt templates.

The server provides:
  - Idea backlog generation from a strategy brief
  - Per-template script generation (reels, stories, carousels)
  - Schema validation of every model response
  - A hot-reloadable prompt pack with per-template hook banks`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.contentcraft/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "contentcraft home directory (default: ~/.contentcraft)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
