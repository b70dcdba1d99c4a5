package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/Rumperuu/150ASM-Emulator/check"
	"github.com/Rumperuu/150ASM-Emulator/emulator"
	"github.com/Rumperuu/150ASM-Emulator/program"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run an SCC.150 assembler program",
	ArgsUsage: "<program.scc>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "steps",
			Usage: "abort after executing this many steps, comments included; must be positive",
			Value: emulator.STEP_LIMIT,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every step and the register bank",
		},
		&cli.StringSliceFlag{
			Name:    "expect",
			Aliases: []string{"e"},
			Usage:   "Starlark expression over REGA..REGX, INSP and STEPS that must hold after the run",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write PRT output to this file",
			Value:   "-",
		},
	},
}

// loadProgram loads the program named by the single command argument.
func loadProgram(ctx *cli.Context) (prog *program.Program, err error) {
	if ctx.NArg() != 1 {
		err = cli.Exit(f("%v: expected one program file, got %d arguments", ctx.Command.Name, ctx.NArg()), EXIT_LOAD_ERROR)
		return
	}

	path := ctx.Args().First()
	ld := &program.Loader{Verbose: ctx.Bool("verbose")}
	prog, err = ld.LoadFile(path)
	if err != nil {
		err = cli.Exit(f("%v: load error: %v", path, err), EXIT_LOAD_ERROR)
		return
	}

	return
}

func doRun(ctx *cli.Context) error {
	steps := ctx.Int("steps")
	if steps <= 0 {
		return cli.Exit(f("--steps must be positive, got %d", steps), EXIT_EXEC_ERROR)
	}

	prog, err := loadProgram(ctx)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if path := ctx.String("output"); path != "-" {
		ouf, err := os.Create(path)
		if err != nil {
			return cli.Exit(f("%v: %v", path, err), EXIT_EXEC_ERROR)
		}
		atexit.Register(func() { ouf.Close() })
		output = ouf
	}

	banner := term.IsTerminal(int(os.Stdout.Fd()))

	emu := emulator.NewEmulator(output)
	emu.Program = prog
	emu.Verbose = ctx.Bool("verbose")
	emu.StepLimit = steps

	if banner {
		fmt.Fprintln(os.Stdout, f("RUNNING PROGRAM..."))
	}

	err = emu.Run()
	if err != nil {
		return cli.Exit(f("%v: execution error: %v", prog.Name, err), EXIT_EXEC_ERROR)
	}

	if banner {
		fmt.Fprintln(os.Stdout, f("... DONE!"))
	}

	err = check.Expect(emu, ctx.StringSlice("expect")...)
	if err != nil {
		return cli.Exit(f("%v: %v", prog.Name, err), EXIT_EXEC_ERROR)
	}

	return nil
}
