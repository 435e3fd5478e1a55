package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tour topics in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range catalog.Default(rootOpts.Pace).Topics() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Group, t.Title)
			}
			return tw.Flush()
		},
	}
}
