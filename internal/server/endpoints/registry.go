package endpoints

import (
	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Template catalog
		&ListTemplatesEndpoint{},

		// Generation endpoints
		&BacklogEndpoint{},
		&ScriptEndpoint{},

		// Admin endpoints
		&GetPromptsEndpoint{},
		&UpdatePromptsEndpoint{},
		&AddHookEndpoint{},
		&UpdateHookEndpoint{},
		&DeleteHookEndpoint{},
	}
}

// Public returns the endpoints exposed as flat CLI commands.
func Public() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&StatusEndpoint{},
		&ListTemplatesEndpoint{},
		&BacklogEndpoint{},
		&ScriptEndpoint{},
	}
}

// AdminCommand groups the admin CLI commands under "admin".
func AdminCommand(getServerURL func() string) *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Prompt pack administration",
	}

	prompts := &cobra.Command{
		Use:   "prompts",
		Short: "Read and update the prompt pack",
	}
	prompts.AddCommand((&GetPromptsEndpoint{}).Command(getServerURL))
	prompts.AddCommand((&UpdatePromptsEndpoint{}).Command(getServerURL))

	hooks := &cobra.Command{
		Use:   "hooks",
		Short: "Manage template hook banks",
	}
	hooks.AddCommand((&AddHookEndpoint{}).Command(getServerURL))
	hooks.AddCommand((&UpdateHookEndpoint{}).Command(getServerURL))
	hooks.AddCommand((&DeleteHookEndpoint{}).Command(getServerURL))

	admin.AddCommand(prompts, hooks)
	return admin
}
