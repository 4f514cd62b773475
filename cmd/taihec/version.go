package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taihe/internal/diag"
	"taihe/internal/env"
	"taihe/internal/version"
)

func newVersionCmd(e env.Environment) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the compiler version",
		RunE: func(cmd *cobra.Command, args []string) error {
			colored := e.Interactive
			mode, _ := cmd.Root().PersistentFlags().GetString("color")
			if decide, ok := diag.ParseColorMode(mode); ok && mode != "auto" && mode != "" {
				colored = decide(nil)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "taihec %s\n", version.Pretty(colored))
			if full {
				if version.GitCommit != "" {
					fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
				}
				if version.BuildDate != "" {
					fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
				}
				fmt.Fprintf(out, "resources: %s (%s)\n", e.ResourceDir, e.Mode)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "also print commit, build date and resource directory")
	return cmd
}
