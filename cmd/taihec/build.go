package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taihe/internal/codegen"
	"taihe/internal/diag"
	"taihe/internal/driver"
	"taihe/internal/env"
	"taihe/internal/project"
)

type buildFlags struct {
	output   string
	config   string
	author   bool
	sts      bool
	ani      bool
	c        bool
	cpp      bool
	dump     bool
	keepName bool
	parallel bool
	jobs     int
	timings  bool
	codes    bool
	ui       string
}

func newBuildCmd(e env.Environment) *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build [dirs...]",
		Short: "Check IDL sources and generate bindings",
		Long: `Scan the given directories for *.taihe files, check them and, when an
output directory is set, generate the selected bindings. Without directories
the sources of the nearest taihe.toml are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, e, &f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output directory (analysis only when empty)")
	fl.StringVar(&f.config, "config", "", "project manifest (default: nearest "+project.ManifestName+")")
	fl.BoolVar(&f.author, "author", false, "generate author-mode implementation stubs")
	fl.BoolVar(&f.sts, "sts", false, "generate user-facing ArkTS bindings")
	fl.BoolVar(&f.ani, "ani", false, "generate the native bridge")
	fl.BoolVar(&f.c, "c", false, "generate C ABI headers")
	fl.BoolVar(&f.cpp, "cpp", false, "generate the C++ projection")
	fl.BoolVar(&f.dump, "dump", false, "dump the resolved graph")
	fl.BoolVar(&f.keepName, "keep-name", false, "publish every name as written")
	fl.BoolVar(&f.parallel, "parallel", false, "run generators concurrently")
	fl.IntVar(&f.jobs, "jobs", 0, "maximum concurrent generators (0 = unlimited)")
	fl.BoolVar(&f.timings, "timings", false, "print phase timings")
	fl.BoolVar(&f.codes, "codes", false, "show diagnostic codes")
	fl.StringVar(&f.ui, "ui", "off", "progress view (auto|on|off)")
	return cmd
}

func runBuild(cmd *cobra.Command, e env.Environment, f *buildFlags, args []string) error {
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProf()
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts, err := buildOptions(cmd, f, args)
	if err != nil {
		return err
	}
	opts.Env = e

	colorMode, _ := cmd.Root().PersistentFlags().GetString("color")
	decide, ok := diag.ParseColorMode(colorMode)
	if !ok {
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	mode, err := readUIMode(f.ui)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	useUI := shouldUseTUI(mode, e)
	var sink io.Writer = stderr
	var buffered bytes.Buffer
	if useUI {
		// diagnostics wait until the view has released the terminal
		sink = &buffered
		base := decide
		decide = func(io.Writer) bool { return base(stderr) }
	}
	m := diag.NewManager(sink, diag.WithColor(decide), diag.WithCodes(f.codes))

	newCompiler := func(o driver.Options) *driver.Compiler { return driver.New(o, m) }
	var (
		c       *driver.Compiler
		success bool
	)
	if useUI {
		var uiErr error
		c, success, uiErr = runWithUI(cmd.Context(), stderr, opts, newCompiler)
		if _, err := buffered.WriteTo(stderr); err != nil {
			return err
		}
		if uiErr != nil {
			return fmt.Errorf("progress view: %w", uiErr)
		}
	} else {
		c = newCompiler(opts)
		success = c.Run(cmd.Context())
	}

	if summary := m.Summary(); summary != "" {
		fmt.Fprintf(stderr, "taihec: %s\n", summary)
	}
	if f.timings {
		fmt.Fprint(stderr, c.Timer().Summary())
	}
	if !success {
		return errBuildFailed
	}
	return nil
}

// buildOptions merges the manifest with the command line; flags given
// explicitly win.
func buildOptions(cmd *cobra.Command, f *buildFlags, args []string) (driver.Options, error) {
	var man *project.Manifest
	var err error
	switch {
	case f.config != "":
		man, err = project.Load(f.config)
	case len(args) == 0:
		man, _, err = project.Discover(".")
	}
	if err != nil {
		return driver.Options{}, err
	}

	opts := driver.Options{Sources: args, OutputDir: f.output}
	var gen project.GenerateConfig
	if man != nil {
		gen = man.Config.Generate
		if len(opts.Sources) == 0 {
			opts.Sources = man.Sources()
		}
		if opts.OutputDir == "" {
			opts.OutputDir = man.Output()
		}
		if !cmd.Flags().Changed("jobs") {
			f.jobs = man.Config.Build.Jobs
		}
	}
	if len(opts.Sources) == 0 {
		return driver.Options{}, fmt.Errorf("no source directories: pass them as arguments or list them in %s", project.ManifestName)
	}

	pick := func(name string, flag, manifest bool) bool {
		if cmd.Flags().Changed(name) {
			return flag
		}
		return manifest
	}
	opts.KeepNames = pick("keep-name", f.keepName, gen.KeepName)
	opts.Generate = codegen.Config{
		C:        pick("c", f.c, gen.C),
		CPP:      pick("cpp", f.cpp, gen.CPP),
		Author:   pick("author", f.author, gen.Author),
		STS:      pick("sts", f.sts, gen.STS),
		ANI:      pick("ani", f.ani, gen.ANI),
		Dump:     pick("dump", f.dump, gen.Dump),
		Parallel: pick("parallel", f.parallel, gen.Parallel),
		Jobs:     f.jobs,
	}
	return opts, nil
}
