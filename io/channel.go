// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the output channel used by the LS-8 PRN instruction.
package io

// Channel defines the interface for LS-8 output channels.
// Channels receive whole register values, one per PRN.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single register value to the channel.
	Send(value uint8) error
}
