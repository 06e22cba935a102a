package cmd

import (
	"github.com/spf13/cobra"
)

// CareerCmd creates the career command group: list and delete saved
// careers (spec §6).
func CareerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career",
		Short: "Manage saved careers",
	}
	cmd.AddCommand(careerListCmd())
	cmd.AddCommand(careerDeleteCmd())
	return cmd
}

func careerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved career ids",
		RunE: func(c *cobra.Command, args []string) error {
			svc, err := newService(c.Context())
			if err != nil {
				return err
			}
			return emit(svc.CareerList(c.Context()))
		},
	}
}

func careerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <career-id>",
		Short: "Delete a saved career",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			svc, err := newService(c.Context())
			if err != nil {
				return err
			}
			return emit(svc.CareerDelete(c.Context(), args[0]))
		},
	}
}
