package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

// EconomyCmd creates the economy command group: balance, ledger, and
// sponsorship payments (spec §4.6).
func EconomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "economy",
		Short: "Inspect and adjust a career's finances",
	}
	cmd.AddCommand(economyGetCmd())
	cmd.AddCommand(economySponsorCmd())
	return cmd
}

func economyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <career-id>",
		Short: "Show the user team's balance and ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.EconomyGet(cmd.Context(), args[0]))
		},
	}
}

func economySponsorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sponsor <career-id> <team-name> <amount> <label>",
		Short: "Apply a one-off sponsorship payment",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}
			return emit(svc.EconomySponsor(cmd.Context(), args[0], args[1], amount, args[3]))
		},
	}
}
