package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taihe/internal/mangle"
)

func newMangleCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "mangle segment...",
		Short: "Encode path segments into a symbol name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mangle.ParseKind(kind)
			if err != nil {
				return err
			}
			name, err := mangle.Encode(args, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "f", "symbol kind (marker or name, e.g. f, ftable)")
	return cmd
}

func newDemangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demangle name...",
		Short: "Decode symbol names back into kind and segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				segs, kind, err := mangle.Decode(name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(out, "%s %q\n", kind, segs)
			}
			return nil
		},
	}
}
