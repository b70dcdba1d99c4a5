package cpu

import (
	"errors"
	"strings"
)

// isTarget reports whether a token may be used as the first operand of a
// two-operand opcode: a register, or a literal greater than zero.
func isTarget(token string) bool {
	if _, ok := ParseRegister(token); ok {
		return true
	}
	return ParseLiteral(token) > 0
}

// isSource reports whether a token may be used as a value operand: a
// register, or a literal that is zero or greater.
func isSource(token string) bool {
	if _, ok := ParseRegister(token); ok {
		return true
	}
	return ParseLiteral(token) > 0 || strings.HasPrefix(token, "0")
}

// Validate checks decoded fields against the operand rules of their opcode,
// and returns the executable instruction.
//
//   - NOP takes no operands, and any present are ignored.
//   - JMP takes a single value operand, so "JMP 0" is valid.
//   - PRT takes a single target operand; a literal must be above zero.
//   - arg2 of a one-operand opcode is not checked.
//   - All other opcodes take a target in arg1 and a value in arg2.
func Validate(fields Fields) (inst Instruction, err error) {
	op, ok := ParseOp(fields.Opcode)
	if !ok {
		err = errors.Join(ErrValidation, ErrOpcodeInvalid, ErrToken(fields.Opcode))
		return
	}

	inst.Op = op

	switch op.Operands() {
	case 0:
		return
	case 1:
		valid := isTarget
		if op == OP_JMP {
			valid = isSource
		}
		if !valid(fields.Arg1) {
			err = errors.Join(ErrValidation, ErrOpcodeArg1, ErrToken(fields.Arg1))
			return
		}
		inst.Arg1 = MakeOperand(fields.Arg1)
	default:
		if !isTarget(fields.Arg1) {
			err = errors.Join(ErrValidation, ErrOpcodeArg1, ErrToken(fields.Arg1))
			return
		}
		if !isSource(fields.Arg2) {
			err = errors.Join(ErrValidation, ErrOpcodeArg2, ErrToken(fields.Arg2))
			return
		}
		inst.Arg1 = MakeOperand(fields.Arg1)
		inst.Arg2 = MakeOperand(fields.Arg2)
	}

	return
}
