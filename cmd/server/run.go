package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isdmx/scriptbox/config"
	"github.com/isdmx/scriptbox/logger"
	"github.com/isdmx/scriptbox/sandbox"
)

var runWorkdir string

var runCmd = &cobra.Command{
	Use:   "run FILE [ARGS...]",
	Short: "Run a single script inside the working directory and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if runWorkdir != "" {
			cfg.Runner.WorkingDirectory = runWorkdir
		}

		log, err := logger.NewFromConfig(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		runner, err := sandbox.NewRunnerFromConfig(log, cfg)
		if err != nil {
			return err
		}

		out := runner.RunPythonFile(cmd.Context(), cfg.Runner.WorkingDirectory, args[0], args[1:]...)
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runWorkdir, "workdir", "w", "", "working directory (overrides runner.working_directory)")
	// everything after FILE belongs to the script
	runCmd.Flags().SetInterspersed(false)
}
