package cpu

import (
	"fmt"
)

const (
	OPCODE_LENGTH = 3 // Maximum length of an opcode token.
	ARG_LENGTH    = 4 // Maximum length of an operand token.
)

// Op is an opcode of the instruction set.
type Op int

const (
	OP_NOP = Op(0) // NOP
	OP_SET = Op(1) // SET
	OP_AND = Op(2) // AND
	OP_OR  = Op(3) // OR
	OP_ADD = Op(4) // ADD
	OP_SUB = Op(5) // SUB
	OP_SHL = Op(6) // SHL
	OP_SHR = Op(7) // SHR
	OP_JMP = Op(8) // JMP
	OP_PRT = Op(9) // PRT
)

var opName = [...]string{
	OP_NOP: "NOP",
	OP_SET: "SET",
	OP_AND: "AND",
	OP_OR:  "OR",
	OP_ADD: "ADD",
	OP_SUB: "SUB",
	OP_SHL: "SHL",
	OP_SHR: "SHR",
	OP_JMP: "JMP",
	OP_PRT: "PRT",
}

// opMap maps mnemonics to opcodes.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, len(opName))
	for n, name := range opName {
		ops[name] = Op(n)
	}
	return ops
}()

// ParseOp returns the opcode for a mnemonic. Matching is case sensitive.
func ParseOp(word string) (op Op, ok bool) {
	op, ok = opMap[word]
	return
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opName) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opName[op]
}

// Operands returns the number of operands the opcode consumes.
func (op Op) Operands() int {
	switch op {
	case OP_NOP:
		return 0
	case OP_JMP, OP_PRT:
		return 1
	default:
		return 2
	}
}

// Register is an index into the register bank.
type Register int

const (
	REG_A = Register(0) // REGA
	REG_B = Register(1) // REGB
	REG_C = Register(2) // REGC
	REG_X = Register(3) // REGX, the flag register.

	REGISTER_COUNT = 4
)

var registerName = [REGISTER_COUNT]string{
	REG_A: "REGA",
	REG_B: "REGB",
	REG_C: "REGC",
	REG_X: "REGX",
}

// ParseRegister returns the register named by word. Matching is case
// sensitive.
func ParseRegister(word string) (reg Register, ok bool) {
	for n, name := range registerName {
		if word == name {
			return Register(n), true
		}
	}
	return
}

func (reg Register) String() string {
	if reg < 0 || int(reg) >= len(registerName) {
		return fmt.Sprintf("Register(%d)", int(reg))
	}
	return registerName[reg]
}

// Fields are the raw tokens of one decoded source line.
type Fields struct {
	Opcode string
	Arg1   string
	Arg2   string
}

// Operand is a validated operand: either a register or a literal token.
type Operand struct {
	Token    string   // Source token.
	Register Register // Register, if IsRegister is set.

	IsRegister bool
}

// MakeOperand classifies a token as a register or literal operand.
func MakeOperand(token string) (operand Operand) {
	operand.Token = token
	operand.Register, operand.IsRegister = ParseRegister(token)
	return
}

// Instruction is a validated, executable instruction.
type Instruction struct {
	Op   Op
	Arg1 Operand
	Arg2 Operand
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() (out string) {
	out = inst.Op.String()
	switch inst.Op.Operands() {
	case 1:
		out = fmt.Sprintf("%v %v", out, inst.Arg1.Token)
	case 2:
		out = fmt.Sprintf("%v %v %v", out, inst.Arg1.Token, inst.Arg2.Token)
	}
	return
}
