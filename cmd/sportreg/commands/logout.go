package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Click the logout link and follow its redirect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := appCtx.Logout(cmd.Context())
			if err != nil {
				return err
			}
			for _, loc := range out.Navigations {
				fmt.Fprintf(cmd.OutOrStdout(), "-> %s\n", loc)
			}
			return settle(out)
		},
	}
}
