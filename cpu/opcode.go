// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Opcode is an LS-8 instruction opcode byte.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_RET  = Opcode(0b0001_0001) // RET
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_CALL = Opcode(0b0101_0000) // CALL
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_CMP  = Opcode(0b1010_0111) // CMP
)

// Width returns the number of bytes the instruction occupies in memory,
// opcode included. The upper two bits of an LS-8 opcode hold its operand
// count.
func (op Opcode) Width() uint8 {
	return uint8(op>>6) + 1
}

// Valid returns true if the opcode is in the dispatch table.
func (op Opcode) Valid() (ok bool) {
	_, ok = dispatch[op]
	return
}

// Instruction is a decoded fetch window: the opcode and the two bytes
// following it. Both operand bytes are always fetched, even when the
// opcode does not use them.
type Instruction struct {
	Opcode Opcode
	A      uint8
	B      uint8
}

// String returns the mnemonic and the operands the opcode uses.
func (inst Instruction) String() (out string) {
	switch inst.Opcode.Width() {
	case 1:
		out = inst.Opcode.String()
	case 2:
		out = fmt.Sprintf("%v 0x%02x", inst.Opcode, inst.A)
	default:
		out = fmt.Sprintf("%v 0x%02x 0x%02x", inst.Opcode, inst.A, inst.B)
	}

	return
}
