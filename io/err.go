// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelDetached = errors.New(f("channel has no output attached"))
)
