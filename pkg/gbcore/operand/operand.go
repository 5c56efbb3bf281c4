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

// Package operand implements the abstract endpoints instruction
// kernels read from and write to: ByteSource/ByteDestination for
// 8-bit operands, DoubleByteSource/DoubleByteDestination for 16-bit
// ones. A destination never mutates the Cpu directly — it produces a
// change.Change for the caller to commit.
package operand

import (
	"fmt"

	"github.com/mg-gb/gbcore/pkg/gbcore/change"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// ByteSource reads an 8-bit value out of a Cpu.
type ByteSource interface {
	Read(c *cpu.Cpu) (uint8, error)
	String() string
}

// ByteDestination turns a value into the Change that would store it.
type ByteDestination interface {
	Change(value uint8) change.Change
	String() string
}

// SingleRegister addresses one register cell as both a byte source
// and a byte destination.
type SingleRegister register.Index

func (s SingleRegister) Read(c *cpu.Cpu) (uint8, error) {
	return c.Registers.ReadSingle(register.Index(s))
}

func (s SingleRegister) Change(value uint8) change.Change {
	return change.SingleRegister{Index: register.Index(s), Value: value}
}

func (s SingleRegister) String() string { return register.Index(s).String() }

// Immediate is a byte baked into the instruction stream; it is a
// source only — there is no write-to-immediate destination.
type Immediate uint8

func (i Immediate) Read(c *cpu.Cpu) (uint8, error) { return uint8(i), nil }

func (i Immediate) String() string { return fmt.Sprintf("0x%02X", uint8(i)) }

// AddressInRegister addresses the byte at the address held in a
// register pair (e.g. (HL)).
type AddressInRegister register.Pair

func (a AddressInRegister) Read(c *cpu.Cpu) (uint8, error) {
	addr, err := c.Registers.ReadPair(register.Pair(a))
	if err != nil {
		return 0, err
	}
	return c.ReadByte(addr)
}

func (a AddressInRegister) Change(value uint8) change.Change {
	return change.MemoryByte{Address: change.RegisterAddress(a), Value: value}
}

func (a AddressInRegister) String() string { return "(" + register.Pair(a).String() + ")" }

// OffsetAddressInRegister addresses 0xFF00 + the value of an 8-bit
// register (the (C) form of LDH).
type OffsetAddressInRegister struct {
	Base   uint16
	Offset register.Index
}

func (a OffsetAddressInRegister) Read(c *cpu.Cpu) (uint8, error) {
	off, err := c.Registers.ReadSingle(a.Offset)
	if err != nil {
		return 0, err
	}
	return c.ReadByte(a.Base + uint16(off))
}

func (a OffsetAddressInRegister) Change(value uint8) change.Change {
	return change.MemoryByte{Address: change.OffsetAddress{Base: a.Base, Offset: a.Offset}, Value: value}
}

func (a OffsetAddressInRegister) String() string { return "(" + a.Offset.String() + ")" }

// AddressInImmediate addresses the byte at a 16-bit immediate baked
// into the instruction stream.
type AddressInImmediate uint16

func (a AddressInImmediate) Read(c *cpu.Cpu) (uint8, error) { return c.ReadByte(uint16(a)) }

func (a AddressInImmediate) Change(value uint8) change.Change {
	return change.MemoryByte{Address: change.ImmediateAddress(a), Value: value}
}

func (a AddressInImmediate) String() string { return fmt.Sprintf("(0x%04X)", uint16(a)) }

// DoubleByteSource reads a 16-bit value out of a Cpu.
type DoubleByteSource interface {
	Read(c *cpu.Cpu) (uint16, error)
	String() string
}

// DoubleByteDestination turns a 16-bit value into the Change that
// would store it.
type DoubleByteDestination interface {
	Change(value uint16) change.Change
	String() string
}

// DoubleRegister addresses a register pair as a 16-bit endpoint.
type DoubleRegister register.Pair

func (d DoubleRegister) Read(c *cpu.Cpu) (uint16, error) {
	return c.Registers.ReadPair(register.Pair(d))
}

func (d DoubleRegister) Change(value uint16) change.Change {
	return change.DoubleRegister{Pair: register.Pair(d), Value: value}
}

func (d DoubleRegister) String() string { return register.Pair(d).String() }

// StackPointer addresses SP as a 16-bit endpoint.
type StackPointer struct{}

func (StackPointer) Read(c *cpu.Cpu) (uint16, error) { return c.SP(), nil }

func (StackPointer) Change(value uint16) change.Change { return change.StackPointer{Value: value} }

func (StackPointer) String() string { return "SP" }

// DoubleImmediate is a 16-bit value baked into the instruction
// stream; source only.
type DoubleImmediate uint16

func (d DoubleImmediate) Read(c *cpu.Cpu) (uint16, error) { return uint16(d), nil }

func (d DoubleImmediate) String() string { return fmt.Sprintf("0x%04X", uint16(d)) }

// DoubleAddressInImmediate addresses the word at a 16-bit immediate
// baked into the instruction stream.
type DoubleAddressInImmediate uint16

func (a DoubleAddressInImmediate) Read(c *cpu.Cpu) (uint16, error) {
	return c.ReadDoubleByte(uint16(a))
}

func (a DoubleAddressInImmediate) Change(value uint16) change.Change {
	return change.MemoryDoubleByte{Address: change.ImmediateAddress(a), Value: value}
}

func (a DoubleAddressInImmediate) String() string { return fmt.Sprintf("(0x%04X)", uint16(a)) }
