// Package emulator runs loaded programs on the SCC.150 CPU.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Rumperuu/150ASM-Emulator/cpu"
	"github.com/Rumperuu/150ASM-Emulator/program"
)

const (
	STEP_LIMIT = 150 // Default maximum number of steps per run.
)

// State of the emulator run.
type State int

const (
	STATE_READY   = State(0) // Reset, no step taken.
	STATE_RUNNING = State(1) // Instruction pointer within the program.
	STATE_HALTED  = State(2) // Instruction pointer ran off the program.
	STATE_FAULTED = State(3) // Stopped by a decode, validation or runaway fault.
)

var stateName = [...]string{
	STATE_READY:   "ready",
	STATE_RUNNING: "running",
	STATE_HALTED:  "halted",
	STATE_FAULTED: "faulted",
}

func (state State) String() string {
	if state < 0 || int(state) >= len(stateName) {
		return fmt.Sprintf("State(%d)", int(state))
	}
	return stateName[state]
}

// Emulator state. CPU + program + step accounting.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Program  *program.Program // Reference to the currently running program listing.
	Decoder  *cpu.Decoder     // Line decoder.

	StepLimit int   // Steps allowed per run. If 0 or less, STEP_LIMIT is used.
	Steps     int   // Steps taken since the last reset, comments included.
	State     State // Run state.
}

// NewEmulator creates a new emulator, printing to output.
func NewEmulator(output io.Writer) (emu *Emulator) {
	// can only fail for a non-positive cache size
	decoder, _ := cpu.NewDecoder(cpu.DECODE_CACHE_SIZE)

	emu = &Emulator{
		Cpu:       cpu.NewCpu(output),
		Program:   &program.Program{},
		Decoder:   decoder,
		StepLimit: STEP_LIMIT,
	}

	return
}

// Reset the emulator state, ready to run the program from its first line.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
		emu.Cpu.Tracer = &cpu.LogTracer{Cpu: emu.Cpu}
	}

	emu.Cpu.Reset()
	emu.Decoder.Purge()
	emu.Steps = 0
	emu.State = STATE_READY
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.Ip)
}

// LineNo returns the 1-based source line number of the next step.
func (emu *Emulator) LineNo() int {
	return emu.Ip() + 1
}

// limit returns the effective step limit.
func (emu *Emulator) limit() int {
	if emu.StepLimit <= 0 {
		return STEP_LIMIT
	}
	return emu.StepLimit
}

// Tick performs a single step of the emulator.
//
// done is set once the instruction pointer has reached the end of the
// program. Any error is fatal to the run; further ticks fail with
// ErrFaulted until the emulator is reset.
func (emu *Emulator) Tick() (done bool, err error) {
	switch emu.State {
	case STATE_HALTED:
		done = true
		return
	case STATE_FAULTED:
		err = ErrFaulted
		return
	}

	line, ok := emu.Program.Line(emu.Cpu.Ip)
	if !ok {
		if emu.Verbose {
			log.Printf("emulator: halted after %d steps", emu.Steps)
		}
		emu.State = STATE_HALTED
		done = true
		return
	}

	emu.State = STATE_RUNNING

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			emu.State = STATE_FAULTED
			err = &ErrRuntime{LineNo: lineno, Line: line, Err: err}
		}
	}()

	fields, comment, err := emu.Decoder.Decode(line)
	if err != nil {
		return
	}

	if comment {
		emu.Cpu.Skip()
	} else {
		var inst cpu.Instruction
		inst, err = cpu.Validate(fields)
		if err != nil {
			return
		}

		err = emu.Cpu.Execute(inst)
		if err != nil {
			return
		}
	}

	emu.Steps++
	if emu.Steps > emu.limit() {
		err = ErrRunaway
		return
	}

	return
}

// Run resets the emulator and ticks until the program ends or faults.
func (emu *Emulator) Run() (err error) {
	emu.Reset()

	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Check decodes and validates every instruction line of the program
// without executing anything. All bad lines are reported.
func (emu *Emulator) Check() (err error) {
	var errs []error

	for n, line := range emu.Program.All() {
		fields, comment, lerr := emu.Decoder.Decode(line)
		if lerr == nil && !comment {
			_, lerr = cpu.Validate(fields)
		}
		if lerr != nil {
			errs = append(errs, &ErrRuntime{LineNo: n + 1, Line: line, Err: lerr})
		}
	}

	return errors.Join(errs...)
}
