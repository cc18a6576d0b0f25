// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Program is a loaded LS-8 memory image.
type Program struct {
	Bytes []uint8 // Memory image, loaded from address 0.
	Lines []int   // Source line number of each byte in Bytes.
}

// LineNo returns the source line number of the byte at addr,
// or 0 if addr is past the end of the program.
func (prog *Program) LineNo(addr uint8) int {
	if int(addr) >= len(prog.Lines) {
		return 0
	}

	return prog.Lines[addr]
}

// Len returns the size of the memory image.
func (prog *Program) Len() int {
	return len(prog.Bytes)
}

// Loader reads the LS-8 program text format.
//
// Each line is either a comment, starting with '#', or starts with
// eight binary digits (MSB first) giving one byte of the image. Text
// after the eighth character is ignored. Blank lines are skipped.
type Loader struct {
	Verbose bool // If set, verbosely logs each loaded byte.
}

const binaryDigits = 8

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineno += 1

		if strings.HasPrefix(line, "#") || len(strings.TrimSpace(line)) == 0 {
			continue
		}

		var value uint8
		value, err = parseBinary(line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		if prog.Len() == MEMORY_SIZE {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrProgramSize}
			return
		}

		if ld.Verbose {
			log.Printf("loader: %02x: %08b (line %d)", prog.Len(), value, lineno)
		}

		prog.Bytes = append(prog.Bytes, value)
		prog.Lines = append(prog.Lines, lineno)
	}

	err = scanner.Err()

	return
}

// ParseFile opens and parses a program file.
func (ld *Loader) ParseFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return ld.Parse(inf)
}

// parseBinary decodes the leading binary digits of a program line.
func parseBinary(line string) (value uint8, err error) {
	if len(line) < binaryDigits {
		err = ErrParseBinary(line)
		return
	}

	digits := line[:binaryDigits]
	v64, err := strconv.ParseUint(digits, 2, 8)
	if err != nil {
		err = ErrParseBinary(digits)
		return
	}

	value = uint8(v64)

	return
}
