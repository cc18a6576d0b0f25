// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrTickLimit       = errors.New(f("tick limit reached"))
	ErrWatchExpression = errors.New(f("watch expression"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint8
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc 0x%02x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
