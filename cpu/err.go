// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("code not valid"))

	// Loader errors
	ErrProgramSize = errors.New(f("program exceeds memory"))
)

// ErrOpcode identifies the instruction that failed to execute.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction 0x%02x (%v)", uint8(eo.Opcode), Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates a loader error in the program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseBinary is a program line that does not start with eight binary digits.
type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8 digit binary number", string(err))
}
