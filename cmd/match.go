package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/internal/service"
)

// MatchCmd creates the match command group: per-fixture lookup, manual
// override, and single-fixture simulation (spec §6 `match
// get|set-result|simulate`).
func MatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Inspect, override, or simulate one fixture",
	}
	cmd.AddCommand(matchGetCmd())
	cmd.AddCommand(matchSetResultCmd())
	cmd.AddCommand(matchSimulateCmd())
	return cmd
}

func matchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <career-id> <match-id>",
		Short: "Show one fixture's details (scheduled or final)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.MatchGet(cmd.Context(), args[0], args[1]))
		},
	}
}

func matchSetResultCmd() *cobra.Command {
	var payloadPath string
	c := &cobra.Command{
		Use:   "set-result <career-id> <match-id>",
		Short: "Manually record a scheduled fixture's scoreline (JSON payload)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			var req service.MatchSetResultRequest
			if err := readJSONArg(payloadPath, &req); err != nil {
				return err
			}
			return emit(svc.MatchSetResult(cmd.Context(), args[0], args[1], req))
		},
	}
	c.Flags().StringVar(&payloadPath, "payload", "-", "path to a JSON request body, or - for stdin")
	return c
}

func matchSimulateCmd() *cobra.Command {
	var actor string
	c := &cobra.Command{
		Use:   "simulate <career-id> <match-id>",
		Short: "Simulate one scheduled fixture through the match kernel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.MatchSimulate(cmd.Context(), args[0], args[1], actor))
		},
	}
	c.Flags().StringVar(&actor, "actor", "viewer", "who triggered the simulation, for logging")
	return c
}
