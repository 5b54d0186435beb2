package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isdmx/scriptbox/toolspec"
)

var describeFormat string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the run_python_file tool declaration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		decl := toolspec.RunPythonFile()

		var (
			data []byte
			err  error
		)
		switch describeFormat {
		case "json":
			data, err = decl.JSON()
		case "yaml":
			data, err = decl.YAML()
		default:
			return fmt.Errorf("unsupported format: %s, must be 'json' or 'yaml'", describeFormat)
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	describeCmd.Flags().StringVarP(&describeFormat, "format", "f", "json", "output format: json or yaml")
}
