package cmd

import "github.com/spf13/cobra"

// CalendarCmd creates the calendar command group: weekly advance.
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Advance a career's calendar",
	}
	cmd.AddCommand(calendarNextWeekCmd())
	return cmd
}

func calendarNextWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-week <career-id>",
		Short: "Play the current round's fixtures and advance one week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.CalendarNextWeek(cmd.Context(), args[0]))
		},
	}
}
