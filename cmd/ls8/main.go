// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

// Process exit codes.
const (
	EXIT_OK      = 0 // Program halted.
	EXIT_USAGE   = 1 // Bad command line.
	EXIT_LOAD    = 2 // Program file could not be opened or parsed.
	EXIT_RUNTIME = 3 // CPU stopped on a fault.
)

var ErrNoInput = errors.New(translate.From("ERROR: No CL Input"))

func main() {
	log.SetFlags(0)
	log.SetPrefix("ls8: ")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var verbose bool
	var tracing bool
	var traceWhen string
	var maxTicks int

	cmd := &cobra.Command{
		Use:           "ls8 [flags] <program.ls8>",
		Short:         "Run an LS-8 program",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrNoInput
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ld := &cpu.Loader{Verbose: verbose}
			prog, err := ld.ParseFile(args[0])
			if err != nil {
				code = EXIT_LOAD
				return
			}

			emu := emulator.NewEmulator()
			emu.Verbose = verbose
			emu.Program = prog
			emu.Tape.Output = stdout
			emu.Tracing = tracing || len(traceWhen) != 0
			emu.MaxTicks = maxTicks

			if len(traceWhen) != 0 {
				emu.Watch, err = emulator.NewWatch(traceWhen)
				if err != nil {
					code = EXIT_USAGE
					return
				}
			}

			err = emu.Run()
			if err != nil {
				code = EXIT_RUNTIME
				return
			}

			if verbose {
				log.Printf("halted after %d ticks", emu.Ticks())
			}

			return
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&tracing, "trace", "t", false, "Print a trace line before each instruction")
	flags.StringVar(&traceWhen, "trace-when", "", "Only trace when this Starlark expression is true (implies --trace)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	flags.IntVar(&maxTicks, "max-ticks", 0, "Stop after this many instructions, 0 for no limit")

	err := cmd.Execute()
	if err != nil {
		if code == EXIT_OK {
			code = EXIT_USAGE
		}
		if errors.Is(err, ErrNoInput) {
			fmt.Fprintln(stderr, err)
		} else {
			fmt.Fprintf(stderr, "%v: %v\n", cmd.Name(), err)
		}
	}

	return
}
