package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/providers"
)

// newModelsCommand creates the models command.
func newModelsCommand() *cobra.Command {
	var dynamic bool

	cmd := &cobra.Command{
		Use:   "models <provider-id>",
		Short: "List a provider's chat models",
		Args:  cobra.ExactArgs(1),
		Example: `  modelmap models bedrock             # Embedded static catalog
  modelmap models openai-like --live   # Fetch the live model list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd, catalogs.ProviderID(args[0]), dynamic)
		},
	}

	cmd.Flags().BoolVar(&dynamic, "live", false, "fetch the live model list instead of the static catalog")

	return cmd
}

// listModels renders a provider's catalog.
func listModels(cmd *cobra.Command, id catalogs.ProviderID, dynamic bool) error {
	adapter, err := providers.Get(id)
	if err != nil {
		return err
	}

	var models []catalogs.Model
	if dynamic {
		models = adapter.DynamicModels(cmd.Context(), config.Sources())
	} else {
		models = adapter.StaticModels()
	}

	if len(models) == 0 {
		fmt.Fprintf(os.Stdout, "no models for provider %s\n", id)
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Label", "Context", "Completion"})

	for _, m := range models {
		table.Append([]string{
			m.Name,
			m.Label,
			fmt.Sprintf("%d", m.MaxTokenAllowed),
			fmt.Sprintf("%d", m.MaxCompletionTokens),
		})
	}

	table.Render()
	return nil
}
