package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/config"
	"github.com/Miladattar/content-craft-persian/internal/home"
	"github.com/Miladattar/content-craft-persian/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ContentCraft server",
	Long: `Start the ContentCraft HTTP server.

The server watches its config file and re-reads the LLM credentials on
change, so an API key can be added without a restart. Without a key the
generation endpoints serve deterministic demo payloads.

Examples:
  contentcraft serve                 # Start on default port 8787
  contentcraft serve --port 3000     # Start on custom port
  contentcraft serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load configuration; --config wins over the default search path.
		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		cm, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		cm.WatchConfig()

		cfg := cm.Get()
		host := serveHost
		if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
			host = cfg.Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") && cfg.Server.Port != 0 {
			port = cfg.Server.Port
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8787, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
