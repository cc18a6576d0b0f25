package cpu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader_Parse(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# print8.ls8",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	}

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]uint8{130, 0, 8, 71, 0, 1}, prog.Bytes)
	assert.Equal([]int{2, 3, 4, 6, 7, 8}, prog.Lines)
	assert.Equal(6, prog.Len())

	assert.Equal(2, prog.LineNo(0))
	assert.Equal(6, prog.LineNo(3))
	assert.Equal(8, prog.LineNo(5))
	assert.Equal(0, prog.LineNo(6))
	assert.Equal(0, prog.LineNo(0xff))
}

func TestLoader_Parse_Empty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	prog, err = ld.Parse(strings.NewReader("# only a comment\n\n   \n"))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
}

func TestLoader_Parse_CRLF(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader("10000010\r\n00000001\r\n#x\r\n11111111\r\n"))
	assert.NoError(err)
	assert.Equal([]uint8{130, 1, 255}, prog.Bytes)
}

func TestLoader_Parse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
		digits string
	}){
		{"short", "10000010\n1010\n", 2, "1010"},
		{"not_binary", "# x\n10200010\n", 2, "10200010"},
		{"letters", "abcdefgh", 1, "abcdefgh"},
		{"indented", "  10000010\n", 1, "  100000"},
		{"signed", "+1000001\n", 1, "+1000001"},
	}

	for _, entry := range table {
		ld := &Loader{}
		_, err := ld.Parse(strings.NewReader(entry.text))
		assert.Error(err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}

		var binary ErrParseBinary
		if assert.True(errors.As(err, &binary), entry.name) {
			assert.Equal(entry.digits, string(binary), entry.name)
		}
	}
}

func TestLoader_Parse_Size(t *testing.T) {
	assert := assert.New(t)

	full := strings.Repeat("00000001\n", MEMORY_SIZE)

	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(full))
	assert.NoError(err)
	assert.Equal(MEMORY_SIZE, prog.Len())

	_, err = ld.Parse(strings.NewReader(full + "# comments are free\n00000001\n"))
	assert.ErrorIs(err, ErrProgramSize)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(MEMORY_SIZE+2, syntax.LineNo)
	}
}

func TestLoader_ParseFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "mult.ls8")
	text := strings.Join([]string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"10000010 # LDI R1,9",
		"00000001",
		"00001001",
		"10100010 # MUL R0,R1",
		"00000000",
		"00000001",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	}, "\n")
	assert.NoError(os.WriteFile(path, []byte(text), 0o644))

	ld := &Loader{}
	prog, err := ld.ParseFile(path)
	assert.NoError(err)
	assert.Equal(12, prog.Len())

	_, output, err := runImage(t, prog.Bytes)
	assert.NoError(err)
	assert.Equal("72\n", output)
}

func TestLoader_ParseFile_Missing(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	_, err := ld.ParseFile(filepath.Join(t.TempDir(), "missing.ls8"))
	assert.ErrorIs(err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.True(errors.As(err, &pathErr))
}
