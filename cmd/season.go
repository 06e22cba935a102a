package cmd

import "github.com/spf13/cobra"

// SeasonCmd creates the season command group: start and end-of-season
// rollover (spec §4.5).
func SeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Start or end a career's season",
	}
	cmd.AddCommand(seasonStartCmd())
	cmd.AddCommand(seasonEndCmd())
	return cmd
}

func seasonStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <career-id>",
		Short: "Build the cup bracket and move to in_progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.SeasonStart(cmd.Context(), args[0]))
		},
	}
}

func seasonEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <career-id>",
		Short: "Run promotion/relegation, archival, progression, and rollover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.SeasonEnd(cmd.Context(), args[0]))
		},
	}
}
