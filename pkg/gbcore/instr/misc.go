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

package instr

import (
	"strings"

	"github.com/mg-gb/gbcore/pkg/gbcore/alu"
	"github.com/mg-gb/gbcore/pkg/gbcore/change"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// Nop is NOP.
type Nop struct{}

func (Nop) ComputeChange(c *cpu.Cpu) (change.Change, error) { return change.NoOp{}, nil }
func (k Nop) Execute(c *cpu.Cpu) error                      { return run(k, c) }
func (Nop) String() string                                  { return "nop" }

// SetIME is EI/DI.
type SetIME struct {
	Value bool
}

func (k SetIME) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	return change.IME{Value: k.Value}, nil
}
func (k SetIME) Execute(c *cpu.Cpu) error { return run(k, c) }
func (k SetIME) String() string {
	if k.Value {
		return "ei"
	}
	return "di"
}

// CarryFlagOp is CCF (Complement) or SCF.
type CarryFlagOp struct {
	Complement bool
}

func (k CarryFlagOp) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	newC := true
	if k.Complement {
		newC = !c.Registers.Flag(register.FlagC)
	}
	return change.Flags{
		Z: change.Preserve(),
		N: change.Set(false),
		H: change.Set(false),
		C: change.Set(newC),
	}, nil
}
func (k CarryFlagOp) Execute(c *cpu.Cpu) error { return run(k, c) }
func (k CarryFlagOp) String() string {
	if k.Complement {
		return "ccf"
	}
	return "scf"
}

// Daa is DAA: post-BCD-correction of the accumulator using the flags
// left by the preceding add/sub.
type Daa struct{}

func (Daa) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	a := c.Registers.Get(register.A)
	sub := c.Registers.Flag(register.FlagN)
	half := c.Registers.Flag(register.FlagH)
	carry := c.Registers.Flag(register.FlagC)
	value, carryOut := alu.Daa(a, sub, half, carry)
	return change.List{Changes: []change.Change{
		change.SingleRegister{Index: register.A, Value: value},
		change.Flags{
			Z: change.Set(value == 0),
			N: change.Preserve(),
			H: change.Set(false),
			C: change.Set(carryOut),
		},
	}}, nil
}
func (k Daa) Execute(c *cpu.Cpu) error { return run(k, c) }
func (Daa) String() string            { return "daa" }

// NotImplemented is STOP/HALT: recognized by the decoder but
// deliberately surfaced as a terminal error rather than executed
// (their effect is outside the core; see DESIGN.md).
type NotImplemented struct {
	Name string
}

func (k NotImplemented) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	return nil, cpuerr.NotImplemented(k.Name)
}
func (k NotImplemented) Execute(c *cpu.Cpu) error { return run(k, c) }
func (k NotImplemented) String() string           { return strings.ToLower(k.Name) }
