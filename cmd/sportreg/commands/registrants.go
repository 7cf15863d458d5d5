package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func registrantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registrants",
		Short: "List registered students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.API.Registrants(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No one has registered yet.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tYEAR\tSPORT")
			for _, r := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Year, r.Sport)
			}
			return tw.Flush()
		},
	}
}
