// Package program loads SCC.150 assembler source into memory.
//
// A Program is a bounded, ordered list of raw source lines. It is created
// once by a Loader and never modified afterwards; the emulator indexes it
// with the instruction pointer.
package program

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"
	"os"

	"github.com/Rumperuu/150ASM-Emulator/translate"
)

var f = translate.From

const (
	MAX_PROG_LEN = 99 // Maximum number of lines in a program.
	MAX_LINE_LEN = 80 // Maximum characters in a line, excluding the terminator.
)

var (
	ErrLoad           = errors.New(f("load fault"))
	ErrProgramTooLong = errors.New(f("program too long"))
	ErrLineTooLong    = errors.New(f("line too long"))
)

// ErrLine indicates the line a load error was found on.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// Program is the loaded source text.
type Program struct {
	Name  string   // Name of the source, for diagnostics.
	Lines []string // Source lines, without terminators.
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

// Line returns the line at index ip.
func (prog *Program) Line(ip uint32) (line string, ok bool) {
	if uint64(ip) >= uint64(len(prog.Lines)) {
		return
	}
	return prog.Lines[ip], true
}

// All returns an iterator over the line indexes and lines of the program.
func (prog *Program) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, line := range prog.Lines {
			if !yield(n, line) {
				return
			}
		}
	}
}

// Loader reads program text, enforcing its size limits.
type Loader struct {
	Verbose bool // If set, logs every line loaded.

	MaxLines      int // Line count limit. If 0, MAX_PROG_LEN is used.
	MaxLineLength int // Line length limit. If 0, MAX_LINE_LEN is used.
}

// Load reads a program from input.
func (ld *Loader) Load(input io.Reader) (prog *Program, err error) {
	maxLines := ld.MaxLines
	if maxLines == 0 {
		maxLines = MAX_PROG_LEN
	}
	maxLength := ld.MaxLineLength
	if maxLength == 0 {
		maxLength = MAX_LINE_LEN
	}

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = errors.Join(ErrLoad, &ErrLine{LineNo: lineno, Line: line, Err: err})
			prog = nil
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if lineno > maxLines {
			err = ErrProgramTooLong
			return
		}

		if len(line) > maxLength {
			err = ErrLineTooLong
			return
		}

		prog.Lines = append(prog.Lines, line)
	}

	err = scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		lineno++
		line = ""
		err = ErrLineTooLong
	}

	return
}

// LoadFile reads a program from the named file.
func (ld *Loader) LoadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrLoad, err)
		return
	}
	defer inf.Close()

	prog, err = ld.Load(inf)
	if err != nil {
		return
	}

	prog.Name = path
	return
}

// Load reads a program from input with the default limits.
func Load(input io.Reader) (prog *Program, err error) {
	ld := &Loader{}
	return ld.Load(input)
}
