package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/internal/service"
)

// TransfersCmd creates the transfers command group: market listings, buys,
// and unsolicited bids (spec §4.6).
func TransfersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Inspect and act on the transfer market",
	}
	cmd.AddCommand(transfersMarketCmd())
	cmd.AddCommand(transfersBuyCmd())
	cmd.AddCommand(transfersBidCmd())
	return cmd
}

func transfersMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market <career-id>",
		Short: "List open transfer listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.TransfersMarket(cmd.Context(), args[0]))
		},
	}
}

func transfersBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <career-id> <buyer-team> <listing-index>",
		Short: "Purchase a market listing",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			return emit(svc.TransfersBuy(cmd.Context(), args[0], args[1], idx))
		},
	}
}

func transfersBidCmd() *cobra.Command {
	var payloadPath string
	c := &cobra.Command{
		Use:   "bid <career-id>",
		Short: "Submit an unsolicited bid for an owned player (JSON payload)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			var req service.TransfersBidRequest
			if err := readJSONArg(payloadPath, &req); err != nil {
				return err
			}
			return emit(svc.TransfersBid(cmd.Context(), args[0], req))
		},
	}
	c.Flags().StringVar(&payloadPath, "payload", "-", "path to a JSON request body, or - for stdin")
	return c
}
