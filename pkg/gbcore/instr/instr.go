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

// Package instr implements the instruction kernels: one Go type per
// instruction family (a tagged-union shape, not one boxed type per
// opcode), each composing operand endpoints with an operation. Every
// kernel's public contract is compute-then-commit: ComputeChange never
// mutates a Cpu, Execute commits whatever ComputeChange returns.
package instr

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/change"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// Instruction is the contract every kernel satisfies.
type Instruction interface {
	ComputeChange(c *cpu.Cpu) (change.Change, error)
	Execute(c *cpu.Cpu) error
	String() string
}

// run is the shared compute+commit path every concrete kernel's
// Execute method delegates to.
func run(i Instruction, c *cpu.Cpu) error {
	ch, err := i.ComputeChange(c)
	if err != nil {
		return err
	}
	if err := ch.Commit(c); err != nil {
		return wrap(err)
	}
	return nil
}

// wrap promotes a bare RamError crossing out of the change/operand
// layers into the ExecutionError every Instruction method returns.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*cpuerr.RamError); ok {
		return cpuerr.FromRam(re)
	}
	return err
}

// Condition gates a control-flow instruction. An unconditional
// instruction uses Condition{None: true}.
type Condition struct {
	None bool
	Flag register.Flag
	Want bool
}

// Test evaluates the condition against the current flags.
func (cond Condition) Test(c *cpu.Cpu) bool {
	if cond.None {
		return true
	}
	return c.Registers.Flag(cond.Flag) == cond.Want
}

func (cond Condition) String() string {
	if cond.None {
		return ""
	}
	name := map[register.Flag]string{register.FlagZ: "Z", register.FlagN: "N", register.FlagH: "H", register.FlagC: "C"}[cond.Flag]
	if !cond.Want {
		return "N" + name
	}
	return name
}
