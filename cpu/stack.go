// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	REG_SP      = 7    // Register index of the stack pointer.
	STACK_START = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Sp returns the current stack pointer.
func (cpu *Cpu) Sp() uint8 {
	return cpu.Register[REG_SP]
}

// Push decrements the stack pointer, then stores value at the new top.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory[cpu.Register[REG_SP]] = value
}

// Pop returns the value at the top of the stack, then increments
// the stack pointer.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Peek()
	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory[cpu.Register[REG_SP]]
}

// Depth returns the number of bytes pushed below STACK_START.
// A stack pointer above STACK_START counts as empty.
func (cpu *Cpu) Depth() int {
	sp := cpu.Register[REG_SP]
	if sp > STACK_START {
		return 0
	}
	return int(STACK_START - sp)
}
