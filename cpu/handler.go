// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// handler executes one instruction against the CPU state.
type handler func(cpu *Cpu, inst Instruction) error

// dispatch is the opcode table. Opcodes not present are invalid.
var dispatch = map[Opcode]handler{
	OP_HLT:  (*Cpu).hlt,
	OP_LDI:  (*Cpu).ldi,
	OP_PRN:  (*Cpu).prn,
	OP_ADD:  (*Cpu).add,
	OP_MUL:  (*Cpu).mul,
	OP_PUSH: (*Cpu).push,
	OP_POP:  (*Cpu).pop,
	OP_CALL: (*Cpu).call,
	OP_RET:  (*Cpu).ret,
	OP_CMP:  (*Cpu).cmp,
	OP_JMP:  (*Cpu).jmp,
	OP_JEQ:  (*Cpu).jeq,
	OP_JNE:  (*Cpu).jne,
}

// next advances the PC past the instruction.
func (cpu *Cpu) next(inst Instruction) {
	cpu.Pc += inst.Opcode.Width()
}

func (cpu *Cpu) hlt(inst Instruction) (err error) {
	cpu.Running = false
	return
}

func (cpu *Cpu) ldi(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	*ra = inst.B
	cpu.next(inst)

	return
}

func (cpu *Cpu) prn(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	if cpu.Output == nil {
		err = ErrChannelInvalid
		return
	}

	err = cpu.Output.Send(*ra)
	if err != nil {
		return
	}

	cpu.next(inst)

	return
}

func (cpu *Cpu) add(inst Instruction) (err error) {
	err = cpu.Alu(ALU_OP_ADD, inst.A, inst.B)
	if err != nil {
		return
	}

	cpu.next(inst)

	return
}

func (cpu *Cpu) mul(inst Instruction) (err error) {
	err = cpu.Alu(ALU_OP_MUL, inst.A, inst.B)
	if err != nil {
		return
	}

	cpu.next(inst)

	return
}

func (cpu *Cpu) push(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	cpu.Push(*ra)
	cpu.next(inst)

	return
}

// pop stores the top of stack before the stack pointer moves, so
// popping into r7 leaves it one past the popped value.
func (cpu *Cpu) pop(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	*ra = cpu.Peek()
	cpu.Register[REG_SP]++
	cpu.next(inst)

	return
}

// call pushes the return address before reading the target register.
func (cpu *Cpu) call(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	cpu.Push(cpu.Pc + inst.Opcode.Width())
	cpu.Pc = *ra

	return
}

func (cpu *Cpu) ret(inst Instruction) (err error) {
	cpu.Pc = cpu.Pop()
	return
}

func (cpu *Cpu) cmp(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}
	rb, err := cpu.register(inst.B)
	if err != nil {
		return
	}

	switch {
	case *ra < *rb:
		cpu.Fl = FL_LESS
	case *ra > *rb:
		cpu.Fl = FL_GREATER
	default:
		cpu.Fl = FL_EQUAL
	}

	cpu.next(inst)

	return
}

func (cpu *Cpu) jmp(inst Instruction) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	cpu.Pc = *ra

	return
}

func (cpu *Cpu) jeq(inst Instruction) (err error) {
	return cpu.jumpIf(inst, cpu.Fl == FL_EQUAL)
}

func (cpu *Cpu) jne(inst Instruction) (err error) {
	return cpu.jumpIf(inst, cpu.Fl != FL_EQUAL)
}

// jumpIf jumps to the address in register A when cond holds,
// otherwise steps over the instruction.
func (cpu *Cpu) jumpIf(inst Instruction, cond bool) (err error) {
	ra, err := cpu.register(inst.A)
	if err != nil {
		return
	}

	if cond {
		cpu.Pc = *ra
	} else {
		cpu.next(inst)
	}

	return
}
