// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 programs: a CPU, a loaded program and the
// output tape, with optional instruction tracing.
package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/translate"
)

// Emulator state. CPU + program + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program.

	Tape io.Tape // PRN output, also receives trace and diagnostic lines.

	Tracing  bool   // If set, print a trace line before each instruction.
	Watch    *Watch // If set, only trace when the watch expression is true.
	MaxTicks int    // If non-zero, stop after this many instructions.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// Reset the CPU, load the program into memory, and start the CPU at
// address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Bytes)
	if err != nil {
		return
	}

	emu.Cpu.Start()

	if emu.Verbose {
		log.Printf("emulator: reset, %d bytes loaded", emu.Program.Len())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the program source line number for the current PC.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has stopped, by HLT or by an error.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
		done = !emu.Cpu.Running
	}()

	if !emu.Cpu.Running {
		return
	}

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		emu.Cpu.Running = false
		err = ErrTickLimit
		return
	}

	if emu.Tracing {
		err = emu.trace()
		if err != nil {
			emu.Cpu.Running = false
			return
		}
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrOpcodeInvalid) {
		emu.emit(f("Code not valid %d\n", emu.Cpu.Memory[pc]))
		emu.emit(emu.Cpu.Trace() + "\n")
	}

	return
}

// Run resets the emulator and ticks until the CPU stops.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// trace prints the CPU trace line, if the watch expression allows it.
func (emu *Emulator) trace() (err error) {
	if emu.Watch != nil {
		var show bool
		show, err = emu.Watch.Eval(emu.Cpu)
		if err != nil || !show {
			return
		}
	}

	emu.emit(emu.Cpu.Trace() + "\n")

	return
}

// emit writes text to the tape output, when one is attached.
func (emu *Emulator) emit(text string) {
	if emu.Tape.Output == nil {
		return
	}

	translate.Fprintf(emu.Tape.Output, "%s", text)
}
