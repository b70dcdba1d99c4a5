// Package cpu implements the register machine for the SCC.150 assembler
// language.
//
// The CPU consists of an instruction pointer (IP) and four 32-bit registers:
// three general-purpose registers (REGA, REGB, REGC) and the flag register
// (REGX) consulted by JMP. Ten opcodes are supported: NOP, SET, AND, OR,
// ADD, SUB, SHL, SHR, JMP and PRT.
//
// Source lines are handled in three stages. Decode splits a line into an
// opcode token and up to two operand tokens, Validate checks the tokens
// against the opcode's operand rules, and Cpu.Execute applies the resulting
// Instruction to the register bank.
package cpu
