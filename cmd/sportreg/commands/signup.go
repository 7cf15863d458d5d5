package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sportreg/internal/domain"
)

func signupCmd() *cobra.Command {
	var password, confirm string
	cmd := &cobra.Command{
		Use:   "signup [username]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("confirm") {
				confirm = password
			}
			n, err := appCtx.API.Signup(cmd.Context(), args[0], password, confirm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.Status, n.Message)
			if n.Status != domain.StatusSuccess {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (default: same as --password)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
