package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Miladattar/content-craft-persian/internal/api"
	"github.com/Miladattar/content-craft-persian/internal/pack"
)

// TemplatesResponse lists the available content templates.
type TemplatesResponse struct {
	Templates []pack.TemplateInfo `json:"templates"`
}

// ListTemplatesEndpoint handles GET /api/templates.
type ListTemplatesEndpoint struct{}

func (e *ListTemplatesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/templates", e.handler
}

func (e *ListTemplatesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TemplatesResponse{Templates: pack.Catalog()})
}

func (e *ListTemplatesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List content templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp TemplatesResponse
			if err := client.Get(cmd.Context(), "/api/templates", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
