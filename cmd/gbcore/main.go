// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command gbcore is a headless demo host for the gbcore LR35902
// emulator core: it loads a flat binary at a chosen address and
// either steps it, printing a register trace, or disassembles it
// linearly without executing anything.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/decoder"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

func main() {
	root := &cobra.Command{
		Use:   "gbcore",
		Short: "LR35902 core demo host",
	}

	var loadAddr uint16
	var startAddr uint16
	var steps int

	runCmd := &cobra.Command{
		Use:   "run [program.bin]",
		Short: "Load a flat binary and step it, printing a register trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], loadAddr, startAddr, steps)
		},
	}
	runCmd.Flags().Uint16Var(&loadAddr, "load", 0xC000, "address to load the binary at")
	runCmd.Flags().Uint16Var(&startAddr, "start", 0xC000, "initial PC")
	runCmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")

	disasmCmd := &cobra.Command{
		Use:   "disasm [program.bin]",
		Short: "Disassemble a flat binary linearly, without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return disassemble(args[0], loadAddr)
		},
	}
	disasmCmd.Flags().Uint16Var(&loadAddr, "load", 0xC000, "address to load the binary at")

	root.AddCommand(runCmd, disasmCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func loadBinary(path string, c *cpu.Cpu, addr uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for i, b := range data {
		if err := c.WriteByte(addr+uint16(i), b); err != nil {
			return err
		}
	}
	return nil
}

func runProgram(path string, loadAddr, startAddr uint16, steps int) error {
	c := cpu.New()
	if err := loadBinary(path, c, loadAddr); err != nil {
		return err
	}
	c.SetPC(startAddr)

	for i := 0; i < steps; i++ {
		pc := c.PC()
		inst, cycles, err := decoder.FetchAndDecode(c)
		if err != nil {
			return errors.Wrapf(err, "step %d at 0x%04X", i, pc)
		}
		if err := inst.Execute(c); err != nil {
			return errors.Wrapf(err, "step %d at 0x%04X (%s)", i, pc, inst)
		}
		c.Tick(cycles)
		printTrace(c, pc, inst)
	}
	return nil
}

func printTrace(c *cpu.Cpu, pc uint16, inst fmt.Stringer) {
	fmt.Printf("%04X  %-16s  PC=%04X SP=%04X A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X\n",
		pc, inst.String(), c.PC(), c.SP(),
		c.Registers.Get(register.A), c.Registers.Get(register.F),
		c.Registers.Get(register.B), c.Registers.Get(register.C),
		c.Registers.Get(register.D), c.Registers.Get(register.E),
		c.Registers.Get(register.H), c.Registers.Get(register.L))
}

func disassemble(path string, loadAddr uint16) error {
	c := cpu.New()
	if err := loadBinary(path, c, loadAddr); err != nil {
		return err
	}
	c.SetPC(loadAddr)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	end := loadAddr + uint16(len(data))
	for c.PC() < end {
		pc := c.PC()
		inst, _, err := decoder.FetchAndDecode(c)
		if err != nil {
			return errors.Wrapf(err, "disasm at 0x%04X", pc)
		}
		fmt.Printf("%04X  %s\n", pc, inst)
	}
	return nil
}
