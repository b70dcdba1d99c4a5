package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/Rumperuu/150ASM-Emulator/translate"
)

const (
	EXIT_EXEC_ERROR = 1 // Program faulted, or an expectation failed.
	EXIT_LOAD_ERROR = 2 // Program could not be loaded.
)

var f = translate.From

// newApp creates the command line application.
func newApp() *cli.App {
	return &cli.App{
		Name:  "scc150",
		Usage: "SCC.150 assembler emulator",
		// Expectations may contain commas.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "locale for numbers in diagnostics, as a BCP 47 tag (message text is English)",
			},
		},
		Before: func(ctx *cli.Context) error {
			if !ctx.IsSet("lang") {
				return nil
			}
			return translate.SetLanguage(ctx.String("lang"))
		},
		Commands: []*cli.Command{
			&RunCmd,
			&CheckCmd,
		},
	}
}

func main() {
	// Run atexit handlers (closing output files) on every exit path.
	cli.OsExiter = atexit.Exit

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(EXIT_EXEC_ERROR)
	}

	atexit.Exit(0)
}
