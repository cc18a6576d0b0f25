// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/cpu"
)

// watchNames are the CPU state names visible to a watch expression.
var watchNames = []string{
	"pc", "fl", "ir", "sp", "ticks",
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
}

// Watch is a compiled Starlark expression over the CPU state,
// such as `pc == 0x10 or r0 > 5`.
type Watch struct {
	Expr string

	prog *starlark.Program
}

// NewWatch compiles a watch expression. Unknown names are rejected here
// rather than on first evaluation.
func NewWatch(expr string) (w *Watch, err error) {
	opts := syntax.FileOptions{}
	isPredeclared := func(name string) bool {
		for _, known := range watchNames {
			if name == known {
				return true
			}
		}
		return false
	}

	_, prog, err := starlark.SourceProgramOptions(&opts, "watch", "rc=("+expr+")\n", isPredeclared)
	if err != nil {
		err = errors.Join(ErrWatchExpression, err)
		return
	}

	w = &Watch{
		Expr: expr,
		prog: prog,
	}

	return
}

// Eval evaluates the expression against the CPU state and returns
// its truth value.
func (w *Watch) Eval(cp *cpu.Cpu) (ok bool, err error) {
	pred := starlark.StringDict{
		"pc":    starlark.MakeInt(int(cp.Pc)),
		"fl":    starlark.MakeInt(int(cp.Fl)),
		"ir":    starlark.MakeInt(int(cp.Memory[cp.Pc])),
		"sp":    starlark.MakeInt(int(cp.Sp())),
		"ticks": starlark.MakeInt(cp.Ticks),
	}
	for n, reg := range cp.Register {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeInt(int(reg))
	}

	thread := starlark.Thread{Name: "watch"}
	dict, err := w.prog.Init(&thread, pred)
	if err != nil {
		err = errors.Join(ErrWatchExpression, err)
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrWatchExpression
		return
	}

	ok = bool(rc.Truth())

	return
}
