package emulator

import (
	"errors"

	"github.com/Rumperuu/150ASM-Emulator/translate"
)

var f = translate.From

var (
	ErrRunaway = errors.New(f("runaway fault"))
	ErrFaulted = errors.New(f("emulator faulted, reset required"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
