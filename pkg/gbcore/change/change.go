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

// Package change implements the atomic change-set/commit protocol:
// every instruction computes a Change describing what it would do to
// a Cpu before anything is mutated, then commits it. Commit order
// matters for a handful of instructions (PUSH, CALL) whose memory
// write resolves its target address from state a preceding change in
// the same list just established.
package change

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// Change is anything that can be applied to a Cpu. Commit must be
// idempotent-free (called exactly once) and is the only place gbcore
// state is mutated outside of Tick.
type Change interface {
	Commit(c *cpu.Cpu) error
}

// NoOp commits nothing. Conditional instructions whose condition is
// false produce a NoOp rather than a nil Change.
type NoOp struct{}

func (NoOp) Commit(c *cpu.Cpu) error { return nil }

// List commits its members in order, stopping at the first failing
// commit. A MemoryByte/MemoryDoubleByte change later in the list sees
// the effects of every earlier change in the same list — this is
// what lets PUSH's "SP -= 2" commit before its "write word at SP"
// commit resolve the write address from the already-updated SP.
type List struct {
	Changes []Change
}

func (l List) Commit(c *cpu.Cpu) error {
	for _, ch := range l.Changes {
		if err := ch.Commit(c); err != nil {
			return err
		}
	}
	return nil
}

// SingleRegister writes one register cell.
type SingleRegister struct {
	Index register.Index
	Value uint8
}

func (s SingleRegister) Commit(c *cpu.Cpu) error {
	return c.Registers.WriteSingle(s.Index, s.Value)
}

// DoubleRegister writes one register pair.
type DoubleRegister struct {
	Pair  register.Pair
	Value uint16
}

func (d DoubleRegister) Commit(c *cpu.Cpu) error {
	return c.Registers.WritePair(d.Pair, d.Value)
}

// StackPointer overwrites SP.
type StackPointer struct {
	Value uint16
}

func (s StackPointer) Commit(c *cpu.Cpu) error {
	c.SetSP(s.Value)
	return nil
}

// ProgramCounter overwrites PC.
type ProgramCounter struct {
	Value uint16
}

func (p ProgramCounter) Commit(c *cpu.Cpu) error {
	c.SetPC(p.Value)
	return nil
}

// IME overwrites the interrupt-master-enable flag.
type IME struct {
	Value bool
}

func (i IME) Commit(c *cpu.Cpu) error {
	c.SetIME(i.Value)
	return nil
}

// Address resolves a memory target at commit time, not at the time
// the owning Change was constructed — the mechanism that makes
// PUSH/CALL's ordering work.
type Address interface {
	Resolve(c *cpu.Cpu) (uint16, error)
}

// ImmediateAddress is a fixed address baked in at compute time.
type ImmediateAddress uint16

func (a ImmediateAddress) Resolve(c *cpu.Cpu) (uint16, error) { return uint16(a), nil }

// RegisterAddress resolves to the current value of a register pair,
// read at commit time.
type RegisterAddress register.Pair

func (a RegisterAddress) Resolve(c *cpu.Cpu) (uint16, error) {
	return c.Registers.ReadPair(register.Pair(a))
}

// StackPointerAddress resolves to the current SP, read at commit
// time — used by PUSH/CALL/RST after an SP change earlier in the
// same List has already landed.
type StackPointerAddress struct{}

func (StackPointerAddress) Resolve(c *cpu.Cpu) (uint16, error) { return c.SP(), nil }

// OffsetAddress resolves to base + the current value of an 8-bit
// register, zero-extended (the 0xFF00+C addressing mode).
type OffsetAddress struct {
	Base   uint16
	Offset register.Index
}

func (a OffsetAddress) Resolve(c *cpu.Cpu) (uint16, error) {
	v, err := c.Registers.ReadSingle(a.Offset)
	if err != nil {
		return 0, err
	}
	return a.Base + uint16(v), nil
}

// MemoryByte writes one byte at an address resolved at commit time.
type MemoryByte struct {
	Address Address
	Value   uint8
}

func (m MemoryByte) Commit(c *cpu.Cpu) error {
	addr, err := m.Address.Resolve(c)
	if err != nil {
		return err
	}
	return c.WriteByte(addr, m.Value)
}

// MemoryDoubleByte writes a little-endian word at an address resolved
// at commit time.
type MemoryDoubleByte struct {
	Address Address
	Value   uint16
}

func (m MemoryDoubleByte) Commit(c *cpu.Cpu) error {
	addr, err := m.Address.Resolve(c)
	if err != nil {
		return err
	}
	return c.WriteDoubleByte(addr, m.Value)
}

// Tri is a tri-state flag setting: Keep leaves the flag untouched,
// otherwise Value is committed.
type Tri struct {
	Keep  bool
	Value bool
}

// Set returns a Tri that commits value.
func Set(value bool) Tri { return Tri{Value: value} }

// Preserve returns a Tri that leaves the flag untouched.
func Preserve() Tri { return Tri{Keep: true} }

// Flags commits the four LR35902 flags independently; any flag left
// as Preserve() is untouched.
type Flags struct {
	Z, N, H, C Tri
}

func (f Flags) Commit(c *cpu.Cpu) error {
	apply := func(flag register.Flag, tri Tri) {
		if !tri.Keep {
			c.Registers.SetFlag(flag, tri.Value)
		}
	}
	apply(register.FlagZ, f.Z)
	apply(register.FlagN, f.N)
	apply(register.FlagH, f.H)
	apply(register.FlagC, f.C)
	return nil
}
