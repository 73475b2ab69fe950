package main

import (
	"log/slog"

	"github.com/go-ricrob/keypadsolver/internal/config"
	"github.com/go-ricrob/keypadsolver/internal/logging"
	"github.com/spf13/cobra"
)

// options are shared by all commands.
type options struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

// load reads the configuration file; flags given on the command line take precedence.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = o.logLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = logging.New(cmd.ErrOrStderr(), lvl)
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "keypadsolver",
		Short: "keypadsolver counts the presses needed to type door codes through a chain of keypad robots",
		Long: `keypadsolver computes how many buttons the operator has to press on a directional keypad
so that a chain of robots, the last one in front of a numeric keypad, types door codes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Configuration file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newSolveCmd(opts), newTraceCmd(opts), newVersionCmd())
	return cmd
}
