// Package main wires every command group into a root cobra command and
// runs it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/cmd"
	"github.com/apell0/managerspelet/internal/echo"
)

// RootCmd is the root command for the manager CLI.
var RootCmd = &cobra.Command{
	Use:   "manager",
	Short: "Turn-based football management",
	Long: echo.HeaderStyle().Render("Manager") + "\n\n" +
		"Run careers entirely from the command line: generate a league and\n" +
		"calendar, simulate rounds, and inspect the contract projection one\n" +
		"verb group at a time.",
}

func init() {
	// emit already prints a styled error to stderr; cobra's own
	// Error:/Usage: banner would just duplicate it.
	RootCmd.SilenceErrors = true
	RootCmd.SilenceUsage = true
	cmd.AddPersistentFlags(RootCmd)
	RootCmd.AddCommand(cmd.CareerCmd())
	RootCmd.AddCommand(cmd.GameCmd())
	RootCmd.AddCommand(cmd.OptionsCmd())
	RootCmd.AddCommand(cmd.TableCmd())
	RootCmd.AddCommand(cmd.FixturesCmd())
	RootCmd.AddCommand(cmd.MatchCmd())
	RootCmd.AddCommand(cmd.TeamCmd())
	RootCmd.AddCommand(cmd.SquadCmd())
	RootCmd.AddCommand(cmd.PlayerCmd())
	RootCmd.AddCommand(cmd.StatsCmd())
	RootCmd.AddCommand(cmd.YouthCmd())
	RootCmd.AddCommand(cmd.TransfersCmd())
	RootCmd.AddCommand(cmd.EconomyCmd())
	RootCmd.AddCommand(cmd.MailCmd())
	RootCmd.AddCommand(cmd.CupCmd())
	RootCmd.AddCommand(cmd.SeasonCmd())
	RootCmd.AddCommand(cmd.CalendarCmd())
	RootCmd.AddCommand(cmd.TacticsCmd())
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
