package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(0, cpu.Depth())

	cpu.Push(0x12)
	assert.Equal(1, cpu.Depth())
	assert.Equal(uint8(STACK_START-1), cpu.Sp())
	assert.Equal(uint8(0x12), cpu.Memory[STACK_START-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xAB)

	assert.Equal(uint8(0xAB), cpu.Pop())
	assert.Equal(1, cpu.Depth())

	assert.Equal(uint8(0x12), cpu.Pop())
	assert.Equal(0, cpu.Depth())
	assert.Equal(uint8(STACK_START), cpu.Sp())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xAB)

	assert.Equal(uint8(0xAB), cpu.Peek())
	assert.Equal(2, cpu.Depth())
}

func TestStack_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(0, cpu.Depth())

	// Popping an empty stack reads past STACK_START.
	cpu.Memory[STACK_START] = 0x77
	assert.Equal(uint8(0x77), cpu.Pop())
	assert.Equal(uint8(STACK_START+1), cpu.Sp())
	assert.Equal(0, cpu.Depth())
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0

	cpu.Push(0x5a)
	assert.Equal(uint8(0xff), cpu.Sp())
	assert.Equal(uint8(0x5a), cpu.Memory[0xff])

	assert.Equal(uint8(0x5a), cpu.Pop())
	assert.Equal(uint8(0), cpu.Sp())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xAB)
	assert.Equal(2, cpu.Depth())

	cpu.Reset()
	assert.Equal(0, cpu.Depth())
	assert.Equal(uint8(0), cpu.Memory[STACK_START-1])
}
