// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the LS-8 microprocessor and its program loader.
//
// The CPU consists of 256 bytes of memory, eight 8-bit general-purpose
// registers (r0-r7, with r7 doubling as the stack pointer), a program
// counter (PC), and a flags register (FL) holding the result of the last
// comparison. Instructions are decoded from a fixed three byte window at
// PC and dispatched through a static opcode table.
//
// The loader reads the LS-8 program text format: one byte per line as
// eight binary digits, with '#' comment lines.
package cpu
