package cmd

import "github.com/spf13/cobra"

// OptionsCmd creates the options command group: the career's free-form
// key/value settings map.
func OptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <career-id> <key> <value>",
		Short: "Set a free-form career option",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.OptionsSet(cmd.Context(), args[0], args[1], args[2]))
		},
	}
}
