package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

// YouthCmd creates the youth command group: junior intake offers and
// preference management (spec §4.6).
func YouthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "youth",
		Short: "Inspect and resolve youth intake offers",
	}
	cmd.AddCommand(youthGetCmd())
	cmd.AddCommand(youthPreferenceCmd())
	cmd.AddCommand(youthAcceptCmd())
	return cmd
}

func youthGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <career-id> <team-name>",
		Short: "Show a team's pending youth offers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.YouthGet(cmd.Context(), args[0], args[1]))
		},
	}
}

func youthPreferenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preference <career-id> <preference>",
		Short: "Set the youth intake preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.YouthSetPreference(cmd.Context(), args[0], args[1]))
		},
	}
}

func youthAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <career-id> <team-name> <offer-id>",
		Short: "Accept a pending youth intake offer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			offerID, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			return emit(svc.YouthAccept(cmd.Context(), args[0], args[1], offerID))
		},
	}
}
