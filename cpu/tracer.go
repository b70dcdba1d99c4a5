package cpu

import (
	"log"
)

//go:generate go tool mockgen -source=tracer.go -destination=tracer_mock.go -package=cpu

// Tracer observes the CPU as it steps through a program.
type Tracer interface {
	// Skip is called before a comment line at ip is stepped over.
	Skip(ip uint32)
	// Execute is called before inst, fetched from ip, is executed.
	Execute(ip uint32, inst Instruction)
}

// LogTracer logs every step, and the register bank it is applied to.
type LogTracer struct {
	Cpu *Cpu
}

func (lt *LogTracer) Skip(ip uint32) {
	log.Printf("%03d: #", ip)
}

func (lt *LogTracer) Execute(ip uint32, inst Instruction) {
	log.Printf("%03d: %v", ip, inst)
	if lt.Cpu != nil {
		log.Printf("regs: %v", lt.Cpu)
	}
}
