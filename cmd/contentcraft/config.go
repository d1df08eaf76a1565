package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/config"
	"github.com/Miladattar/content-craft-persian/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config.yaml into the contentcraft home directory.

The generated file references environment variables for secrets
(OPENROUTER_API_KEY, CONTENTCRAFT_ADMIN_PASSWORD) so it can be
committed or copied between machines safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if h.ConfigExists() {
			return fmt.Errorf("config already exists at %s", h.ConfigPath())
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", h.ConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
