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
	"fmt"

	"github.com/mg-gb/gbcore/pkg/gbcore/change"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/operand"
)

// JumpKind selects JP's target form.
type JumpKind int

const (
	JumpAbsolute JumpKind = iota
	JumpRelative
)

// Jump is JP/JR, conditionally gated.
type Jump struct {
	Cond   Condition
	Kind   JumpKind
	Target operand.DoubleByteSource
	Delta  int8
}

func (k *Jump) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	if !k.Cond.Test(c) {
		return change.NoOp{}, nil
	}
	if k.Kind == JumpRelative {
		return change.ProgramCounter{Value: uint16(int32(c.PC()) + int32(k.Delta))}, nil
	}
	target, err := k.Target.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	return change.ProgramCounter{Value: target}, nil
}

func (k *Jump) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Jump) String() string {
	name := "jp"
	if k.Kind == JumpRelative {
		name = "jr"
	}
	if k.Cond.None {
		if k.Kind == JumpRelative {
			return fmt.Sprintf("%s e", name)
		}
		return fmt.Sprintf("%s %s", name, k.Target)
	}
	if k.Kind == JumpRelative {
		return fmt.Sprintf("%s %s, e", name, k.Cond)
	}
	return fmt.Sprintf("%s %s, %s", name, k.Cond, k.Target)
}

// Call is CALL, conditionally gated: pushes the return address (the
// PC after the full instruction, already advanced by decode) before
// jumping.
type Call struct {
	Cond   Condition
	Target operand.DoubleByteSource
}

func (k *Call) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	if !k.Cond.Test(c) {
		return change.NoOp{}, nil
	}
	target, err := k.Target.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	returnPC := c.PC()
	return change.List{Changes: []change.Change{
		change.StackPointer{Value: c.SP() - 2},
		change.MemoryDoubleByte{Address: change.StackPointerAddress{}, Value: returnPC},
		change.ProgramCounter{Value: target},
	}}, nil
}

func (k *Call) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Call) String() string {
	if k.Cond.None {
		return fmt.Sprintf("call %s", k.Target)
	}
	return fmt.Sprintf("call %s, %s", k.Cond, k.Target)
}

// Return is RET/RETI, conditionally gated. EnableIME marks RETI.
type Return struct {
	Cond      Condition
	EnableIME bool
}

func (k *Return) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	if !k.Cond.Test(c) {
		return change.NoOp{}, nil
	}
	sp := c.SP()
	addr, err := c.ReadDoubleByte(sp)
	if err != nil {
		return nil, wrap(err)
	}
	changes := []change.Change{
		change.ProgramCounter{Value: addr},
		change.StackPointer{Value: sp + 2},
	}
	if k.EnableIME {
		changes = append(changes, change.IME{Value: true})
	}
	return change.List{Changes: changes}, nil
}

func (k *Return) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Return) String() string {
	if k.EnableIME {
		return "reti"
	}
	if k.Cond.None {
		return "ret"
	}
	return fmt.Sprintf("ret %s", k.Cond)
}

// Restart is RST n: an unconditional CALL to one of the eight fixed
// zero-page vectors.
type Restart struct {
	Address uint16
}

func (k *Restart) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	returnPC := c.PC()
	return change.List{Changes: []change.Change{
		change.StackPointer{Value: c.SP() - 2},
		change.MemoryDoubleByte{Address: change.StackPointerAddress{}, Value: returnPC},
		change.ProgramCounter{Value: k.Address},
	}}, nil
}

func (k *Restart) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Restart) String() string { return fmt.Sprintf("rst 0x%02X", k.Address) }
