package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/config"
	"github.com/alexisbeaulieu97/domkit/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// appContext bundles the configuration and logger shared by subcommands.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func (f *rootFlags) load(cmd *cobra.Command) (*appContext, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", f.configPath, err, "Fix the config file or omit --config to use defaults.")
	}

	level := cfg.Log.Level
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("create logger", level, err, "Use one of debug, info, warn or error.")
	}

	return &appContext{cfg: cfg, log: log.With("command", cmd.Name())}, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "domkit",
		Short:         "domkit queries and edits HTML documents and exposes wrap and debounce helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newWrapCmd())
	cmd.AddCommand(newRandomCmd())
	cmd.AddCommand(newEscapeCmd())
	cmd.AddCommand(newSelectCmd(flags))
	cmd.AddCommand(newAttrsCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newIOSCmd())
	cmd.AddCommand(newWatchCmd(flags))

	return cmd
}
