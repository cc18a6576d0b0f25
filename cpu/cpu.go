// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

const (
	MEMORY_SIZE    = 256 // Bytes of addressable memory.
	REGISTER_COUNT = 8   // General purpose registers, r7 included.
)

// Flags register values, set by CMP.
const (
	FL_EQUAL   = uint8(1) // Operands were equal.
	FL_GREATER = uint8(2) // First operand was greater.
	FL_LESS    = uint8(3) // First operand was less.
)

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   [MEMORY_SIZE]uint8    // Main memory.
	Register [REGISTER_COUNT]uint8 // Register bank; r7 is the stack pointer.
	Pc       uint8                 // Address of the next instruction.
	Fl       uint8                 // Result of the last comparison.
	Running  bool                  // Cleared by HLT or a fatal error.

	Output Channel // Destination of PRN values.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears memory and registers.
// - Sets the stack pointer to STACK_START.
// - Clears PC, FL and the tick counter.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_START
	cpu.Pc = 0
	cpu.Fl = 0
	cpu.Running = false
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Load copies a program image into memory, starting at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrProgramSize
		return
	}

	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Start sets the PC to 0 and marks the CPU as running.
// Memory and registers are left as they are.
func (cpu *Cpu) Start() {
	cpu.Pc = 0
	cpu.Running = true
}

// Fetch reads the three byte instruction window at PC.
// Addresses past the end of memory wrap to 0.
func (cpu *Cpu) Fetch() (inst Instruction) {
	pc := cpu.Pc
	inst = Instruction{
		Opcode: Opcode(cpu.Memory[pc]),
		A:      cpu.Memory[pc+1],
		B:      cpu.Memory[pc+2],
	}

	return
}

// Tick executes a single CPU instruction cycle.
// Any error stops the CPU.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	inst := cpu.Fetch()

	err = cpu.Execute(inst)
	if err != nil {
		cpu.Running = false
		return
	}

	cpu.Ticks++

	return
}

// Run starts the CPU from address 0 and ticks until it halts.
func (cpu *Cpu) Run() (err error) {
	cpu.Start()

	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
// The handler is responsible for advancing the PC.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %02x: %v", cpu.Pc, inst)
	}

	handle, ok := dispatch[inst.Opcode]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	err = handle(cpu, inst)

	return
}

// register returns a reference to a register by index.
func (cpu *Cpu) register(index uint8) (reg *uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	reg = &cpu.Register[index]
	return
}

// Trace returns a single line dump of the PC, the instruction window at
// the PC, and all registers, as two digit hex values.
func (cpu *Cpu) Trace() string {
	pc := cpu.Pc

	var text strings.Builder
	fmt.Fprintf(&text, "TRACE: %02X | %02X %02X %02X |",
		pc, cpu.Memory[pc], cpu.Memory[pc+1], cpu.Memory[pc+2])

	for _, reg := range cpu.Register {
		fmt.Fprintf(&text, " %02X", reg)
	}

	return text.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"ir",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			switch cpu.Fl {
			case FL_EQUAL:
				strval = "eq"
			case FL_GREATER:
				strval = "gt"
			case FL_LESS:
				strval = "lt"
			default:
				strval = "--"
			}
		case "ir":
			strval = cpu.Fetch().String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "stack":
			if cpu.Depth() > 0 {
				strval = fmt.Sprintf("%02X (depth %d)", cpu.Peek(), cpu.Depth())
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
