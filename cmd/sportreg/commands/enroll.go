package commands

import (
	"github.com/spf13/cobra"

	"sportreg/internal/domain"
)

func enrollCmd() *cobra.Command {
	var name, year, sport string
	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Register a student for a sport",
		Long: "Submit the sports registration form. Fields left unset are sent " +
			"empty, so the server's own validation message is shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := appCtx.Enroll(cmd.Context(), []domain.FormField{
				{Name: "name", Value: name},
				{Name: "year", Value: year},
				{Name: "sport", Value: sport},
			})
			if err != nil {
				return err
			}
			return settle(out)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "student name")
	cmd.Flags().StringVarP(&year, "year", "y", "", `year of study, e.g. "Year 2"`)
	cmd.Flags().StringVar(&sport, "sport", "", `sport, e.g. "Table Tennis"`)
	return cmd
}
