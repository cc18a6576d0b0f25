// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
)

// Alu performs a register-to-register ALU operation, storing
// the result in register a.
func (cpu *Cpu) Alu(op AluOp, a, b uint8) (err error) {
	ra, err := cpu.register(a)
	if err != nil {
		return
	}
	rb, err := cpu.register(b)
	if err != nil {
		return
	}

	*ra = doAlu(op, *ra, *rb)

	return
}

// doAlu performs the requested ALU action, and returns the output value.
// All results wrap at 8 bits.
func doAlu(op AluOp, input uint8, value uint8) (output uint8) {
	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_MUL:
		output = input * value
	default:
		panic(f("unsupported ALU operation %v", op))
	}

	return
}
