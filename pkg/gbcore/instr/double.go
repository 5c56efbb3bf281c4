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

	"github.com/mg-gb/gbcore/pkg/gbcore/alu"
	"github.com/mg-gb/gbcore/pkg/gbcore/change"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/operand"
)

// DoubleArithmetic is ADD HL,rp (Right set, ZeroPreserved true) or
// ADD SP,e8 / LD HL,SP+e8 (SignedDelta set, Z always cleared).
type DoubleArithmetic struct {
	Dst          operand.DoubleByteDestination
	Base         operand.DoubleByteSource
	Right        operand.DoubleByteSource
	SignedDelta  *int8
	ZeroPreserved bool
}

func (k *DoubleArithmetic) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	base, err := k.Base.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	var value uint16
	var half, carry bool
	if k.SignedDelta != nil {
		value, half, carry = alu.AddSignedToU16(base, *k.SignedDelta)
	} else {
		right, err := k.Right.Read(c)
		if err != nil {
			return nil, wrap(err)
		}
		value, half, carry = alu.Add16(base, right)
	}
	zero := change.Set(false)
	if k.ZeroPreserved {
		zero = change.Preserve()
	}
	return change.List{Changes: []change.Change{
		k.Dst.Change(value),
		change.Flags{Z: zero, N: change.Set(false), H: change.Set(half), C: change.Set(carry)},
	}}, nil
}

func (k *DoubleArithmetic) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *DoubleArithmetic) String() string {
	if k.SignedDelta != nil {
		return fmt.Sprintf("add %s, e", k.Base)
	}
	return fmt.Sprintf("add %s, %s", k.Dst, k.Right)
}

// IncDecDouble is INC/DEC rp: no flags affected.
type IncDecDouble struct {
	Dst   operand.DoubleByteDestination
	Src   operand.DoubleByteSource
	Delta int16
}

func (k *IncDecDouble) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	return k.Dst.Change(uint16(int32(v) + int32(k.Delta))), nil
}

func (k *IncDecDouble) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *IncDecDouble) String() string {
	if k.Delta > 0 {
		return fmt.Sprintf("inc %s", k.Dst)
	}
	return fmt.Sprintf("dec %s", k.Dst)
}

// DoubleLoad is a 16-bit LD.
type DoubleLoad struct {
	Src operand.DoubleByteSource
	Dst operand.DoubleByteDestination
}

func (k *DoubleLoad) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	return k.Dst.Change(v), nil
}

func (k *DoubleLoad) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *DoubleLoad) String() string { return fmt.Sprintf("ld %s, %s", k.Dst, k.Src) }

// Push is PUSH rr: SP -= 2 commits before the word write, so the
// write's commit-time address resolution reads the already-updated
// SP (see change.StackPointerAddress).
type Push struct {
	Src operand.DoubleByteSource
}

func (k *Push) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	return change.List{Changes: []change.Change{
		change.StackPointer{Value: c.SP() - 2},
		change.MemoryDoubleByte{Address: change.StackPointerAddress{}, Value: v},
	}}, nil
}

func (k *Push) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Push) String() string { return fmt.Sprintf("push %s", k.Src) }

// Pop is POP rr: reads the word at SP, then SP += 2.
type Pop struct {
	Dst operand.DoubleByteDestination
}

func (k *Pop) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	sp := c.SP()
	v, err := c.ReadDoubleByte(sp)
	if err != nil {
		return nil, wrap(err)
	}
	return change.List{Changes: []change.Change{
		k.Dst.Change(v),
		change.StackPointer{Value: sp + 2},
	}}, nil
}

func (k *Pop) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Pop) String() string { return fmt.Sprintf("pop %s", k.Dst) }
