package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

// MailCmd creates the mail command group: per-team inbox listing and
// read-marking.
func MailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Inspect a team's inbox",
	}
	cmd.AddCommand(mailListCmd())
	cmd.AddCommand(mailReadCmd())
	return cmd
}

func mailListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <career-id> <team-id>",
		Short: "List a team's mail, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.MailList(cmd.Context(), args[0], args[1]))
		},
	}
}

func mailReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <career-id> <team-id> <message-id>",
		Short: "Mark a mail message read",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			msgID, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			return emit(svc.MailRead(cmd.Context(), args[0], args[1], msgID))
		},
	}
}
