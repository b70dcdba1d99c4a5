package main

import (
	"github.com/urfave/cli/v2"

	"github.com/Rumperuu/150ASM-Emulator/emulator"
)

var CheckCmd = cli.Command{
	Action:    doCheck,
	Name:      "check",
	Usage:     "Decode and validate every line of a program without running it",
	ArgsUsage: "<program.scc>",
}

func doCheck(ctx *cli.Context) error {
	prog, err := loadProgram(ctx)
	if err != nil {
		return err
	}

	emu := emulator.NewEmulator(nil)
	emu.Program = prog

	err = emu.Check()
	if err != nil {
		return cli.Exit(f("%v: %v", prog.Name, err), EXIT_EXEC_ERROR)
	}

	return nil
}
