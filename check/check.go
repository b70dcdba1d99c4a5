// Package check evaluates expectations about the machine state left by a
// program run.
//
// An expectation is a Starlark expression, such as "REGA == 8 and REGX == 0".
// The registers, the instruction pointer (INSP) and the step count (STEPS)
// are bound as integers.
package check

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/Rumperuu/150ASM-Emulator/cpu"
	"github.com/Rumperuu/150ASM-Emulator/emulator"
	"github.com/Rumperuu/150ASM-Emulator/translate"
)

var f = translate.From

var (
	ErrExpectation = errors.New(f("expectation failed"))
)

// ErrExpression reports an expression that does not evaluate to a boolean.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expectation", string(err))
}

// ErrFailed reports an expectation that evaluated to false.
type ErrFailed struct {
	Expr  string
	State string
}

func (err *ErrFailed) Error() string {
	return f("'%v' is false for %v", err.Expr, err.State)
}

func (err *ErrFailed) Unwrap() error {
	return ErrExpectation
}

// Globals returns the Starlark bindings for the emulator state.
func Globals(emu *emulator.Emulator) (dict starlark.StringDict) {
	dict = starlark.StringDict{
		"INSP":  starlark.MakeUint64(uint64(emu.Cpu.Ip)),
		"STEPS": starlark.MakeInt(emu.Steps),
	}
	for n, val := range emu.Cpu.Register {
		dict[cpu.Register(n).String()] = starlark.MakeUint64(uint64(val))
	}

	return
}

// Evaluate evaluates expr against the emulator state.
func Evaluate(emu *emulator.Emulator, expr string) (ok bool, err error) {
	thread := starlark.Thread{Name: "check"}
	opts := syntax.FileOptions{}
	prog := "rc = (" + expr + ")\n"

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expect", prog, Globals(emu))
	if err != nil {
		err = errors.Join(ErrExpression(expr), err)
		return
	}

	st_rc, found := dict["rc"]
	if !found {
		err = ErrExpression(expr)
		return
	}
	st_bool, found := st_rc.(starlark.Bool)
	if !found {
		err = ErrExpression(expr)
		return
	}

	ok = bool(st_bool)
	return
}

// Expect returns an error unless every expression holds for the emulator
// state.
func Expect(emu *emulator.Emulator, exprs ...string) (err error) {
	for _, expr := range exprs {
		var ok bool
		ok, err = Evaluate(emu, expr)
		if err != nil {
			return
		}
		if !ok {
			err = &ErrFailed{Expr: expr, State: emu.Cpu.String()}
			return
		}
	}

	return
}
