package cmd

import (
	"context"
	"electrodes/internal/app"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type startOptions struct {
	debug       bool
	noAltScreen bool
	configPath  string
}

func newStartCmd() *cobra.Command {
	opts := &startOptions{}
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a guided test session",
		Long: `Starts the interactive terminal interface. The session collects a worker
ID, first and last name and a work station, then walks through the five steps of
the test procedure. Nothing is stored; the session ends when you quit.

Configuration is read from ~/.config/electrodes/config.yaml, then
./.electrodes/config.yaml, then the file given with --config. ELECTRODES_*
environment variables (also read from ./.env) override all files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Show debug entries in the activity log")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Draw inline instead of in the alternate screen")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Additional configuration file layered on top of the others")
	return cmd
}

func runStart(ctx context.Context, opts *startOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Ctrl+C reaches the TUI as a key press; SIGTERM needs to end the program
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(app.NewConfig(opts.debug, opts.noAltScreen, opts.configPath))
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
