package cpu

import (
	"errors"

	"github.com/Rumperuu/150ASM-Emulator/translate"
)

var f = translate.From

var (
	// Fault classes
	ErrDecode     = errors.New(f("decode fault"))
	ErrValidation = errors.New(f("validation fault"))

	// Decode errors
	ErrOpcodeRange  = errors.New(f("opcode out of range"))
	ErrOperandRange = errors.New(f("operand out of range"))

	// Validation errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrOpcodeArg1    = errors.New(f("arg1"))
	ErrOpcodeArg2    = errors.New(f("arg2"))
)

// ErrToken reports a token that is not a register or acceptable literal.
type ErrToken string

func (err ErrToken) Error() string {
	return f("'%v' is not a register or value", string(err))
}

// ErrLength reports a token longer than its field allows.
type ErrLength struct {
	Token string
	Limit int
}

func (err ErrLength) Error() string {
	return f("'%v' longer than %d characters", err.Token, err.Limit)
}
