package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the settings a run would use after merging defaults, the
configuration file, and flags. The output can be saved as quizdoc.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
	addSubmitFlags(cmd)
	addExtractFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}
