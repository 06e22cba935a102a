package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/internal/service"
)

// TacticsCmd creates the tactics command group: per-team tactic and
// aggressiveness updates (JSON payload).
func TacticsCmd() *cobra.Command {
	var payloadPath string
	cmd := &cobra.Command{
		Use:   "tactics <career-id>",
		Short: "Set a team's tactic and aggressiveness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			var req service.TacticsSetRequest
			if err := readJSONArg(payloadPath, &req); err != nil {
				return err
			}
			return emit(svc.TacticsSet(cmd.Context(), args[0], req))
		},
	}
	cmd.Flags().StringVar(&payloadPath, "payload", "-", "path to a JSON request body, or - for stdin")
	return cmd
}
