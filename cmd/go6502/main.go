// Command go6502 is a thin front end around the cpu package: a CLI for
// running a hex-encoded program to completion, and a TUI for stepping
// through one. Neither is part of the emulator itself; both exist so the
// core is runnable as more than a library.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/theonlytruealex/go6502/cpu"
	"github.com/theonlytruealex/go6502/status"
)

func loadProgramFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cpu.ParseHexProgram(string(data))
}

func printState(c *cpu.CPU) {
	fmt.Printf("A:  $%02X\n", c.A)
	fmt.Printf("X:  $%02X\n", c.X)
	fmt.Printf("Y:  $%02X\n", c.Y)
	fmt.Printf("PC: $%04X\n", c.PC)
	fmt.Printf("S:  $%02X\n", c.S)
	fmt.Printf("P:  NV-BDIZC\n")
	fmt.Printf("    %s\n", status.String(c.P))
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: go6502 run <file>", 1)
	}
	program, err := loadProgramFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	c6502 := cpu.New()
	if err := c6502.LoadAndRun(program); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	printState(c6502)
	return nil
}

func debug(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: go6502 debug <file>", 1)
	}
	program, err := loadProgramFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	c6502 := cpu.New()
	if err := c6502.Debug(program); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "go6502",
		Usage: "run and inspect 6502 machine code",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "load a hex-encoded program and run it to completion",
				ArgsUsage: "<file>",
				Action:    run,
			},
			{
				Name:      "debug",
				Usage:     "load a hex-encoded program and step through it in a TUI",
				ArgsUsage: "<file>",
				Action:    debug,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
