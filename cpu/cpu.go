package cpu

import (
	"fmt"
	"io"
)

// Cpu is the register machine executing validated instructions.
type Cpu struct {
	Tracer Tracer    // If set, observes every step.
	Output io.Writer // Destination of PRT output.

	Ip       uint32                 // Index of the next program line.
	Register [REGISTER_COUNT]uint32 // Register bank.
}

// NewCpu creates a new CPU printing to output.
func NewCpu(output io.Writer) (cpu *Cpu) {
	cpu = &Cpu{
		Output: output,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("INSP=%d", cpu.Ip)
	for n, val := range cpu.Register {
		text += fmt.Sprintf(" %v=%d", Register(n), val)
	}

	return
}

// Reset the CPU state. Clears the registers and the instruction pointer.
func (cpu *Cpu) Reset() {
	clear(cpu.Register[:])
	cpu.Ip = 0
}

// Skip steps over a comment line.
func (cpu *Cpu) Skip() {
	if cpu.Tracer != nil {
		cpu.Tracer.Skip(cpu.Ip)
	}

	cpu.Ip++
}

// Execute executes a single validated instruction.
//
// The register named by arg1 is the only register written. If arg1 is a
// literal the result is discarded. JMP moves the instruction pointer to the
// value of arg1 when REGX is zero; every other opcode advances it by one.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if cpu.Tracer != nil {
		cpu.Tracer.Execute(cpu.Ip, inst)
	}

	next_ip := cpu.Ip + 1

	switch inst.Op {
	case OP_NOP:
		// pass
	case OP_SET, OP_AND, OP_OR, OP_ADD, OP_SUB, OP_SHL, OP_SHR:
		val := cpu.Resolve(inst.Arg2)
		if inst.Arg1.IsRegister {
			dst := inst.Arg1.Register
			cpu.Register[dst] = doAlu(inst.Op, cpu.Register[dst], val)
		}
	case OP_JMP:
		if cpu.Register[REG_X] == 0 {
			next_ip = cpu.Resolve(inst.Arg1)
		}
	case OP_PRT:
		err = cpu.print(inst.Arg1)
		if err != nil {
			return
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ip = next_ip

	return
}

// print writes the value of an operand, labelled with the register it was
// read from. Literals get a blank label.
func (cpu *Cpu) print(arg Operand) (err error) {
	if cpu.Output == nil {
		return
	}

	var name string
	if arg.IsRegister {
		name = arg.Register.String()
	}

	_, err = fmt.Fprintf(cpu.Output, "%*s = %d\n", ARG_LENGTH, name, cpu.Resolve(arg))
	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op Op, input uint32, value uint32) (output uint32) {
	switch op {
	case OP_SET:
		output = value
	case OP_AND:
		output = input & value
	case OP_OR:
		output = input | value
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_SHL:
		// shifts of 32 or more clear the word
		output = input << value
	case OP_SHR:
		output = input >> value
	}

	return
}
