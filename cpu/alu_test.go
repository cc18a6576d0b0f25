package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for a := range 256 {
		for b := range 256 {
			cpu.Register[0] = uint8(a)
			cpu.Register[1] = uint8(b)
			assert.NoError(cpu.Alu(ALU_OP_ADD, 0, 1))
			if cpu.Register[0] != uint8((a+b)%256) {
				t.Fatalf("%d + %d = %d", a, b, cpu.Register[0])
			}

			cpu.Register[0] = uint8(a)
			assert.NoError(cpu.Alu(ALU_OP_MUL, 0, 1))
			if cpu.Register[0] != uint8((a*b)%256) {
				t.Fatalf("%d * %d = %d", a, b, cpu.Register[0])
			}
		}
	}
}

func TestAlu_Commutative(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []AluOp{ALU_OP_ADD, ALU_OP_MUL} {
		for a := range 256 {
			for b := a; b < 256; b += 7 {
				assert.Equal(doAlu(op, uint8(a), uint8(b)), doAlu(op, uint8(b), uint8(a)), op.String())
			}
		}
	}
}

func TestAlu_SameRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[2] = 12
	assert.NoError(cpu.Alu(ALU_OP_MUL, 2, 2))
	assert.Equal(uint8(144), cpu.Register[2])
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { doAlu(AluOp(7), 1, 2) })

	cpu := NewCpu()
	assert.Panics(func() { cpu.Alu(AluOp(-1), 0, 1) })
}

func TestAluOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ADD", ALU_OP_ADD.String())
	assert.Equal("MUL", ALU_OP_MUL.String())
	assert.Equal("AluOp(9)", AluOp(9).String())
}
