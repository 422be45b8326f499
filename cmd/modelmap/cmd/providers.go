package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
	"github.com/mepankajsingh/modelmap/pkg/credentials"
	"github.com/mepankajsingh/modelmap/pkg/providers"
)

// newProvidersCommand creates the providers command.
func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List configured providers",
		Example: `  modelmap providers                   # List all providers and their status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProviders()
		},
	}
}

// listProviders renders a status table for every registered provider.
func listProviders() error {
	src := config.Sources()
	titler := cases.Title(language.English)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Credential", "Fallback", "Status"})

	for _, adapter := range providers.All() {
		p := adapter.Provider()
		table.Append([]string{
			string(p.ID),
			p.Name,
			titler.String(strings.ReplaceAll(p.Credential.String(), "_", " ")),
			p.Fallback.String(),
			providerStatus(p, src),
		})
	}

	table.Render()
	return nil
}

// providerStatus reports whether the provider's credentials resolve from
// the current sources.
func providerStatus(p *catalogs.Provider, src credentials.Sources) string {
	var err error
	if p.Credential == catalogs.CredentialKindBlob {
		_, err = credentials.ResolveBlob(p, src)
	} else {
		_, err = credentials.Resolve(p, src)
	}
	if err != nil {
		return "missing"
	}
	return "configured"
}
