package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "scriptbox",
	Short: "Run scripts confined to a working directory for LLM agents",
	Long: `scriptbox validates that a requested script lives inside a permitted
working directory, runs it with a time limit and returns a text summary of
its output. The run_python_file tool is served over the Model Context Protocol.`,
	RunE:          runServe, // Default to serve mode.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	rootCmd.AddCommand(serveCmd, runCmd, describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
