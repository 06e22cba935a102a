// Package cmd holds one file per verb group named in spec §6: each
// constructor returns a *cobra.Command whose RunE calls straight through
// to internal/service and prints the resulting Result as JSON. Human-
// facing chrome (headers, colored errors) goes through internal/echo;
// the JSON payload itself is never touched by it.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apell0/managerspelet/internal/config"
	"github.com/apell0/managerspelet/internal/echo"
	"github.com/apell0/managerspelet/internal/service"
	"github.com/apell0/managerspelet/internal/store"
)

var configPath string

// AddPersistentFlags registers the flags every subcommand inherits from
// the root command.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to manager.toml (defaults to ./manager.toml)")
}

// newService loads configuration, wires a CareerManager against the
// configured backend, and builds a Service for one command invocation.
func newService(ctx context.Context) (*service.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	manager, err := store.NewCareerManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build career manager: %w", err)
	}
	return service.New(manager, cfg), nil
}

// emit prints a service Result as JSON on stdout and, on failure, an
// echo-styled message on stderr plus a non-nil error so cobra exits 1.
func emit(result service.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	if !result.OK {
		fmt.Fprintln(os.Stderr, echo.ErrorStyle().Render(fmt.Sprintf("%s: %s", result.Error.Code, result.Error.Message)))
		return fmt.Errorf("%s", result.Error.Message)
	}
	return nil
}
