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
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// ArithOp selects which of the four add/sub kernels ByteArithmetic
// runs.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithAdc
	ArithSub
	ArithSbc
)

func (op ArithOp) mnemonic() string {
	return [...]string{"add", "adc", "sub", "sbc"}[op]
}

// ByteArithmetic is ADD/ADC/SUB/SBC A,<src>.
type ByteArithmetic struct {
	Op    ArithOp
	Left  operand.ByteSource
	Right operand.ByteSource
	Dst   operand.ByteDestination
}

func (k *ByteArithmetic) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	l, err := k.Left.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	r, err := k.Right.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	carry := c.Registers.Flag(register.FlagC)
	var res alu.Result
	switch k.Op {
	case ArithAdd:
		res = alu.AddU8(l, r)
	case ArithAdc:
		res = alu.AddU8WithCarry(l, r, carry)
	case ArithSub:
		res = alu.SubU8(l, r)
	case ArithSbc:
		res = alu.SubU8WithCarry(l, r, carry)
	}
	return change.List{Changes: []change.Change{
		k.Dst.Change(res.Value),
		change.Flags{
			Z: change.Set(res.Value == 0),
			N: change.Set(res.Sub),
			H: change.Set(res.HalfCarry),
			C: change.Set(res.Carry),
		},
	}}, nil
}

func (k *ByteArithmetic) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *ByteArithmetic) String() string {
	return fmt.Sprintf("%s %s, %s", k.Op.mnemonic(), k.Dst, k.Right)
}

// LogicalOp selects which of AND/OR/XOR ByteLogical runs.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
	LogicalXor
)

func (op LogicalOp) mnemonic() string {
	return [...]string{"and", "or", "xor"}[op]
}

// ByteLogical is AND/OR/XOR A,<src>.
type ByteLogical struct {
	Op    LogicalOp
	Left  operand.ByteSource
	Right operand.ByteSource
	Dst   operand.ByteDestination
}

func (k *ByteLogical) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	l, err := k.Left.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	r, err := k.Right.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	var value uint8
	switch k.Op {
	case LogicalAnd:
		value = l & r
	case LogicalOr:
		value = l | r
	case LogicalXor:
		value = l ^ r
	}
	return change.List{Changes: []change.Change{
		k.Dst.Change(value),
		change.Flags{
			Z: change.Set(value == 0),
			N: change.Set(false),
			H: change.Set(k.Op == LogicalAnd),
			C: change.Set(false),
		},
	}}, nil
}

func (k *ByteLogical) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *ByteLogical) String() string {
	return fmt.Sprintf("%s %s", k.Op.mnemonic(), k.Right)
}

// Compare is CP <src>: subtracts without writing the result back.
type Compare struct {
	Left  operand.ByteSource
	Right operand.ByteSource
}

func (k *Compare) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	l, err := k.Left.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	r, err := k.Right.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	res := alu.SubU8(l, r)
	return change.Flags{
		Z: change.Set(res.Value == 0),
		N: change.Set(true),
		H: change.Set(res.HalfCarry),
		C: change.Set(res.Carry),
	}, nil
}

func (k *Compare) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Compare) String() string { return fmt.Sprintf("cp %s", k.Right) }

// UnaryKind selects which single-operand byte kernel UnaryByte runs.
type UnaryKind int

const (
	UnaryInc UnaryKind = iota
	UnaryDec
	UnaryRLC
	UnaryRL
	UnaryRRC
	UnaryRR
	UnarySLA
	UnarySRA
	UnarySRL
	UnarySwap
	UnaryComplement
)

var unaryMnemonics = [...]string{"inc", "dec", "rlc", "rl", "rrc", "rr", "sla", "sra", "srl", "swap", "cpl"}

func (k UnaryKind) mnemonic() string { return unaryMnemonics[k] }

// UnaryByte is the single-operand byte family: INC/DEC, the seven
// rotate/shift kernels, SWAP, and CPL.
type UnaryByte struct {
	Kind UnaryKind
	Src  operand.ByteSource
	Dst  operand.ByteDestination
	// Accumulator marks that Dst is the accumulator: the
	// rotate/shift/swap kernels clear Z unconditionally in that case
	// (see DESIGN.md's Open Question on this rule).
	Accumulator bool
}

func (k *UnaryByte) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	switch k.Kind {
	case UnaryInc:
		res := alu.DeltaU8(v, 1)
		return change.List{Changes: []change.Change{
			k.Dst.Change(res.Value),
			change.Flags{Z: change.Set(res.Value == 0), N: change.Set(false), H: change.Set(res.HalfCarry), C: change.Preserve()},
		}}, nil
	case UnaryDec:
		res := alu.DeltaU8(v, -1)
		return change.List{Changes: []change.Change{
			k.Dst.Change(res.Value),
			change.Flags{Z: change.Set(res.Value == 0), N: change.Set(true), H: change.Set(res.HalfCarry), C: change.Preserve()},
		}}, nil
	case UnaryComplement:
		value := ^v
		return change.List{Changes: []change.Change{
			k.Dst.Change(value),
			change.Flags{N: change.Set(true), H: change.Set(true), Z: change.Preserve(), C: change.Preserve()},
		}}, nil
	default:
		return k.computeShift(c, v)
	}
}

func (k *UnaryByte) computeShift(c *cpu.Cpu, v uint8) (change.Change, error) {
	carryIn := c.Registers.Flag(register.FlagC)
	var value uint8
	var carryOut bool
	switch k.Kind {
	case UnaryRLC:
		carryOut = v&0x80 != 0
		value = v<<1 | b2u8(carryOut)
	case UnaryRL:
		carryOut = v&0x80 != 0
		value = v<<1 | b2u8(carryIn)
	case UnaryRRC:
		carryOut = v&0x01 != 0
		value = v>>1 | (b2u8(carryOut) << 7)
	case UnaryRR:
		carryOut = v&0x01 != 0
		value = v>>1 | (b2u8(carryIn) << 7)
	case UnarySLA:
		carryOut = v&0x80 != 0
		value = v << 1
	case UnarySRA:
		carryOut = v&0x01 != 0
		value = (v >> 1) | (v & 0x80)
	case UnarySRL:
		carryOut = v&0x01 != 0
		value = v >> 1
	case UnarySwap:
		value = (v << 4) | (v >> 4)
		carryOut = false
	}
	zero := value == 0
	if k.Accumulator {
		zero = false
	}
	return change.List{Changes: []change.Change{
		k.Dst.Change(value),
		change.Flags{Z: change.Set(zero), N: change.Set(false), H: change.Set(false), C: change.Set(carryOut)},
	}}, nil
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (k *UnaryByte) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *UnaryByte) String() string {
	if k.Kind == UnaryInc || k.Kind == UnaryDec {
		return fmt.Sprintf("%s %s", k.Kind.mnemonic(), k.Dst)
	}
	if k.Kind == UnaryComplement {
		return k.Kind.mnemonic()
	}
	return fmt.Sprintf("%s %s", k.Kind.mnemonic(), k.Src)
}

// BitOp selects which of BIT/SET/RES SingleBit runs.
type BitOp int

const (
	BitTest BitOp = iota
	BitSet
	BitRes
)

// SingleBit is BIT/SET/RES n,<operand>.
type SingleBit struct {
	Op  BitOp
	Bit uint8
	Src operand.ByteSource
	Dst operand.ByteDestination
}

func (k *SingleBit) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	mask := uint8(1) << k.Bit
	switch k.Op {
	case BitTest:
		return change.Flags{
			Z: change.Set(v&mask == 0),
			N: change.Set(false),
			H: change.Set(true),
			C: change.Preserve(),
		}, nil
	case BitSet:
		return k.Dst.Change(v | mask), nil
	default: // BitRes
		return k.Dst.Change(v &^ mask), nil
	}
}

func (k *SingleBit) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *SingleBit) String() string {
	name := [...]string{"bit", "set", "res"}[k.Op]
	return fmt.Sprintf("%s %d, %s", name, k.Bit, k.Src)
}

// PostUpdate selects the register-pair side effect a Load performs
// after the data move (HL+/HL-).
type PostUpdate int

const (
	PostNone PostUpdate = iota
	PostInc
	PostDec
)

// Load is an 8-bit LD, optionally followed by incrementing or
// decrementing a register pair (LD A,(HL+) and friends).
type Load struct {
	Src        operand.ByteSource
	Dst        operand.ByteDestination
	Update     PostUpdate
	UpdatePair register.Pair
}

func (k *Load) ComputeChange(c *cpu.Cpu) (change.Change, error) {
	v, err := k.Src.Read(c)
	if err != nil {
		return nil, wrap(err)
	}
	changes := []change.Change{k.Dst.Change(v)}
	if k.Update != PostNone {
		pv, err := c.Registers.ReadPair(k.UpdatePair)
		if err != nil {
			return nil, wrap(err)
		}
		delta := int32(1)
		if k.Update == PostDec {
			delta = -1
		}
		changes = append(changes, change.DoubleRegister{Pair: k.UpdatePair, Value: uint16(int32(pv) + delta)})
	}
	return change.List{Changes: changes}, nil
}

func (k *Load) Execute(c *cpu.Cpu) error { return run(k, c) }

func (k *Load) String() string { return fmt.Sprintf("ld %s, %s", k.Dst, k.Src) }
