// Command hvm loads one or more VM source files and executes them,
// starting from Sys.init, until control flow runs off the end of the
// program or an instruction fails.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hvm/internal/asm"
	"hvm/vm"
)

type runFlags struct {
	heapSize   int
	staticSize int
	tempSize   int
	maxIdent   int
	debug      bool
	noColor    bool
	forceColor bool
	startup    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hvm",
		Short:         "hvm runs Hack-family stack VM programs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	run := &cobra.Command{
		Use:           "run [flags] file.vm [file.vm ...]",
		Short:         "load and execute one or more VM source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, flags)
		},
	}

	pf := run.Flags()
	pf.IntVar(&flags.heapSize, "heap-size", vm.MemHeapSize, "word capacity of the shared heap")
	pf.IntVar(&flags.staticSize, "static-size", vm.MemStatSize, "word capacity of each file's static segment")
	pf.IntVar(&flags.tempSize, "temp-size", vm.MemTempSize, "word capacity of each file's temp segment")
	pf.IntVar(&flags.maxIdent, "max-ident", asm.DefaultMaxIdentLen, "identifiers longer than this are truncated, with a warning")
	pf.BoolVar(&flags.debug, "debug", false, "trace every instruction to stderr before it executes")
	pf.BoolVar(&flags.noColor, "no-color", false, "never colorize the error report")
	pf.BoolVar(&flags.forceColor, "color", false, "always colorize the error report, even when stderr isn't a terminal")
	pf.BoolVar(&flags.startup, "startup", false, "synthesize a bootstrap unit that calls Sys.init and halts on return")

	return run
}

func runFiles(cmd *cobra.Command, paths []string, flags *runFlags) error {
	logrus.SetLevel(logrus.WarnLevel)

	opts := []asm.Option{
		asm.WithMemorySizes(flags.heapSize, flags.staticSize, flags.tempSize),
		asm.WithMaxIdentLen(flags.maxIdent),
		asm.WithIO(os.Stdin, cmd.OutOrStdout()),
	}
	if flags.startup {
		opts = append(opts, asm.WithStartup())
	}

	program, err := asm.LoadFiles(paths, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if flags.debug {
		program.Trace = os.Stderr
	}

	if execErr := program.Run(); execErr != nil {
		execErr.Report(os.Stderr, os.Stderr, flags.forceColor, flags.noColor)
		return execErr
	}
	return nil
}
