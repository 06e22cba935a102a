package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/internal/service"
)

// GameCmd creates the game command group: new/dump/save/load (spec §6).
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Create and inspect careers",
	}
	cmd.AddCommand(gameNewCmd())
	cmd.AddCommand(gameDumpCmd())
	cmd.AddCommand(gameSaveCmd())
	cmd.AddCommand(gameLoadCmd())
	return cmd
}

func gameNewCmd() *cobra.Command {
	var structure string
	var levels, teamsPerDivision, promote, relegate int
	var doubleRound bool
	var userTeam string
	var seed uint64

	c := &cobra.Command{
		Use:   "new",
		Short: "Start a new career",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			req := service.NewCareerRequest{
				Structure: structure, Levels: levels, TeamsPerDivision: teamsPerDivision,
				DoubleRound: doubleRound, PromoteCount: promote, RelegateCount: relegate,
				Seed: seed,
			}
			req.UserTeam.Name = userTeam
			return emit(svc.GameNew(cmd.Context(), req))
		},
	}
	c.Flags().StringVar(&structure, "structure", "flat", "league structure: pyramid or flat")
	c.Flags().IntVar(&levels, "levels", 1, "number of pyramid levels")
	c.Flags().IntVar(&teamsPerDivision, "teams-per-division", 10, "clubs per division")
	c.Flags().BoolVar(&doubleRound, "double-round", true, "play each pairing home and away")
	c.Flags().IntVar(&promote, "promote-count", 2, "clubs promoted per level boundary")
	c.Flags().IntVar(&relegate, "relegate-count", 2, "clubs relegated per level boundary")
	c.Flags().StringVar(&userTeam, "user-team", "", "the club the manager takes over")
	c.Flags().Uint64Var(&seed, "seed", 1337, "deterministic RNG seed")
	return c
}

func gameDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <career-id>",
		Short: "Dump the full contract projection for a career",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.GameDump(cmd.Context(), args[0]))
		},
	}
}

func gameSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <career-id>",
		Short: "Force-rewrite a career's save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.GameSave(cmd.Context(), args[0]))
		},
	}
}

func gameLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <career-id>",
		Short: "Validate that a career loads and passes its invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.GameLoad(cmd.Context(), args[0]))
		},
	}
}

// readJSONArg decodes a JSON payload from a file path, or stdin when path
// is "-"; used by command groups whose request body is too structured for
// flags alone.
func readJSONArg(path string, dest any) error {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		opened, err := os.Open(path)
		if err != nil {
			return err
		}
		defer opened.Close()
		f = opened
	}
	return json.NewDecoder(f).Decode(dest)
}
