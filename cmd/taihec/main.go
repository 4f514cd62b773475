// Command taihec compiles taihe IDL sources into binding code.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taihe/internal/env"
	"taihe/internal/version"
)

// errBuildFailed means diagnostics already explained the failure.
var errBuildFailed = errors.New("build failed")

func newRootCmd(e env.Environment) *cobra.Command {
	root := &cobra.Command{
		Use:           "taihec",
		Short:         "taihe IDL compiler",
		Long:          `taihec checks taihe IDL packages and generates C, C++ and ArkTS bindings for them.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("trace", "", "write a trace to file or - for stderr")
	root.PersistentFlags().String("trace-level", "phase", "trace level (off|phase|detail|debug)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(newBuildCmd(e))
	root.AddCommand(newMangleCmd())
	root.AddCommand(newDemangleCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd(e))
	return root
}

func main() {
	e := env.Discover(os.Stderr, env.OS)
	if err := newRootCmd(e).Execute(); err != nil {
		if !errors.Is(err, errBuildFailed) {
			fmt.Fprintf(os.Stderr, "taihec: %v\n", err)
		}
		os.Exit(1)
	}
}
