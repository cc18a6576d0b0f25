// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"fmt"
	"io"
)

// Tape provides sequential decimal output of register values.
// Each value sent is written to Output as a decimal number followed by
// a newline.
type Tape struct {
	Output io.Writer

	// Count of values written since the last Rewind.
	Written int
}

var _ Channel = (*Tape)(nil)

// Rewind only clears the write counter; output already sent to a tape
// cannot be taken back.
func (tc *Tape) Rewind() {
	tc.Written = 0
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelDetached
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Written++

	return
}
