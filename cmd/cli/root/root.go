package root

import (
	"github.com/spf13/cobra"
)

// RootCmd is the folio command; subcommand packages register onto it.
var RootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "Portfolio projects CLI",
	Long:          "Command line interface for the folio projects API. Set FOLIO_API_URL to point at a non-local server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func GetRoot() *cobra.Command {
	return RootCmd
}
