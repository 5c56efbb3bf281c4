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

package decoder

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"
	"github.com/mg-gb/gbcore/pkg/gbcore/instr"
	"github.com/mg-gb/gbcore/pkg/gbcore/operand"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// FetchAndDecode reads one opcode byte at the current PC (and, for
// multi-byte instructions, the immediate operands that follow it),
// advancing PC past the whole instruction, and returns the decoded
// Instruction plus its machine-cycle cost for Cpu.Tick.
func FetchAndDecode(c *cpu.Cpu) (instr.Instruction, uint8, error) {
	opcode, err := c.NextByte()
	if err != nil {
		return nil, 0, wrapRam(err)
	}
	if opcode == 0xCB {
		sub, err := c.NextByte()
		if err != nil {
			return nil, 0, wrapRam(err)
		}
		i, err := decodePrefixed(sub)
		if err != nil {
			return nil, 0, err
		}
		return i, cbCycles[sub], nil
	}
	i, err := decodeUnprefixed(c, opcode)
	if err != nil {
		return nil, 0, err
	}
	return i, unprefixedCycles[opcode], nil
}

func wrapRam(err error) error {
	if re, ok := err.(*cpuerr.RamError); ok {
		return cpuerr.FromRam(re)
	}
	return err
}

func decodeUnprefixed(c *cpu.Cpu, op uint8) (instr.Instruction, error) {
	x, y, z, p, q := splitOpcode(op)

	switch x {
	case 0:
		return decodeX0(c, op, y, z, p, q)
	case 1:
		if z == 6 && y == 6 {
			return instr.NotImplemented{Name: "HALT"}, nil
		}
		return &instr.Load{Src: byteOperand(z), Dst: byteOperand(y)}, nil
	case 2:
		return aluInstruction(y, byteOperand(z)), nil
	default: // x == 3
		return decodeX3(c, op, y, z, p, q)
	}
}

func decodeX0(c *cpu.Cpu, op uint8, y, z, p uint8, q bool) (instr.Instruction, error) {
	switch z {
	case 0:
		switch {
		case y == 0:
			return instr.Nop{}, nil
		case y == 1:
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.DoubleLoad{Src: operand.StackPointer{}, Dst: operand.DoubleAddressInImmediate(nn)}, nil
		case y == 2:
			return instr.NotImplemented{Name: "STOP"}, nil
		case y == 3:
			e, err := nextSigned(c)
			if err != nil {
				return nil, err
			}
			return &instr.Jump{Cond: instr.Condition{None: true}, Kind: instr.JumpRelative, Delta: e}, nil
		default: // y in 4..7: JR cc,e
			e, err := nextSigned(c)
			if err != nil {
				return nil, err
			}
			return &instr.Jump{Cond: condition(y - 4), Kind: instr.JumpRelative, Delta: e}, nil
		}
	case 1:
		if !q {
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.DoubleLoad{Src: operand.DoubleImmediate(nn), Dst: pairDst(p)}, nil
		}
		return &instr.DoubleArithmetic{
			Dst: operand.DoubleRegister(register.HL), Base: operand.DoubleRegister(register.HL),
			Right: pairSrc(p), ZeroPreserved: true,
		}, nil
	case 2:
		return decodeIndirectAccumulator(p, q)
	case 3:
		delta := int16(1)
		if q {
			delta = -1
		}
		return &instr.IncDecDouble{Dst: pairDst(p), Src: pairSrc(p), Delta: delta}, nil
	case 4:
		return &instr.UnaryByte{Kind: instr.UnaryInc, Src: byteOperand(y), Dst: byteOperand(y)}, nil
	case 5:
		return &instr.UnaryByte{Kind: instr.UnaryDec, Src: byteOperand(y), Dst: byteOperand(y)}, nil
	case 6:
		n, err := c.NextByte()
		if err != nil {
			return nil, wrapRam(err)
		}
		return &instr.Load{Src: operand.Immediate(n), Dst: byteOperand(y)}, nil
	default: // z == 7
		return accumulatorRotate(y), nil
	}
}

// decodeIndirectAccumulator is x=0,z=2: LD (BC),A / LD A,(BC) / ...
// down through the GB-specific LD (HL+/-),A forms.
func decodeIndirectAccumulator(p uint8, q bool) (instr.Instruction, error) {
	acc := operand.SingleRegister(register.A)
	switch p {
	case 0:
		if !q {
			return &instr.Load{Src: acc, Dst: operand.AddressInRegister(register.BC)}, nil
		}
		return &instr.Load{Src: operand.AddressInRegister(register.BC), Dst: acc}, nil
	case 1:
		if !q {
			return &instr.Load{Src: acc, Dst: operand.AddressInRegister(register.DE)}, nil
		}
		return &instr.Load{Src: operand.AddressInRegister(register.DE), Dst: acc}, nil
	case 2:
		if !q {
			return &instr.Load{Src: acc, Dst: operand.AddressInRegister(register.HL), Update: instr.PostInc, UpdatePair: register.HL}, nil
		}
		return &instr.Load{Src: operand.AddressInRegister(register.HL), Dst: acc, Update: instr.PostInc, UpdatePair: register.HL}, nil
	default:
		if !q {
			return &instr.Load{Src: acc, Dst: operand.AddressInRegister(register.HL), Update: instr.PostDec, UpdatePair: register.HL}, nil
		}
		return &instr.Load{Src: operand.AddressInRegister(register.HL), Dst: acc, Update: instr.PostDec, UpdatePair: register.HL}, nil
	}
}

// accumulatorRotate is x=0,z=7: RLCA/RRCA/RLA/RRA/DAA/CPL/SCF/CCF.
func accumulatorRotate(y uint8) instr.Instruction {
	acc := operand.SingleRegister(register.A)
	switch y {
	case 0:
		return &instr.UnaryByte{Kind: instr.UnaryRLC, Src: acc, Dst: acc, Accumulator: true}
	case 1:
		return &instr.UnaryByte{Kind: instr.UnaryRRC, Src: acc, Dst: acc, Accumulator: true}
	case 2:
		return &instr.UnaryByte{Kind: instr.UnaryRL, Src: acc, Dst: acc, Accumulator: true}
	case 3:
		return &instr.UnaryByte{Kind: instr.UnaryRR, Src: acc, Dst: acc, Accumulator: true}
	case 4:
		return instr.Daa{}
	case 5:
		return &instr.UnaryByte{Kind: instr.UnaryComplement, Src: acc, Dst: acc}
	case 6:
		return instr.CarryFlagOp{Complement: false}
	default:
		return instr.CarryFlagOp{Complement: true}
	}
}

func decodeX3(c *cpu.Cpu, op uint8, y, z, p uint8, q bool) (instr.Instruction, error) {
	switch z {
	case 0:
		switch {
		case y <= 3:
			return &instr.Return{Cond: condition(y)}, nil
		case y == 4:
			n, err := c.NextByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Load{Src: operand.SingleRegister(register.A), Dst: operand.AddressInImmediate(0xFF00 + uint16(n))}, nil
		case y == 5:
			e, err := nextSigned(c)
			if err != nil {
				return nil, err
			}
			return &instr.DoubleArithmetic{Dst: operand.StackPointer{}, Base: operand.StackPointer{}, SignedDelta: &e}, nil
		case y == 6:
			n, err := c.NextByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Load{Src: operand.AddressInImmediate(0xFF00 + uint16(n)), Dst: operand.SingleRegister(register.A)}, nil
		default:
			e, err := nextSigned(c)
			if err != nil {
				return nil, err
			}
			return &instr.DoubleArithmetic{Dst: operand.DoubleRegister(register.HL), Base: operand.StackPointer{}, SignedDelta: &e}, nil
		}
	case 1:
		if !q {
			return &instr.Pop{Dst: operand.DoubleRegister(doublePair2(p))}, nil
		}
		switch p {
		case 0:
			return &instr.Return{Cond: instr.Condition{None: true}}, nil
		case 1:
			return &instr.Return{Cond: instr.Condition{None: true}, EnableIME: true}, nil
		case 2:
			return &instr.Jump{Cond: instr.Condition{None: true}, Kind: instr.JumpAbsolute, Target: operand.DoubleRegister(register.HL)}, nil
		default:
			return &instr.DoubleLoad{Src: operand.DoubleRegister(register.HL), Dst: operand.StackPointer{}}, nil
		}
	case 2:
		switch {
		case y <= 3:
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Jump{Cond: condition(y), Kind: instr.JumpAbsolute, Target: operand.DoubleImmediate(nn)}, nil
		case y == 4:
			return &instr.Load{Src: operand.SingleRegister(register.A), Dst: operand.OffsetAddressInRegister{Base: 0xFF00, Offset: register.C}}, nil
		case y == 5:
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Load{Src: operand.SingleRegister(register.A), Dst: operand.AddressInImmediate(nn)}, nil
		case y == 6:
			return &instr.Load{Src: operand.OffsetAddressInRegister{Base: 0xFF00, Offset: register.C}, Dst: operand.SingleRegister(register.A)}, nil
		default:
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Load{Src: operand.AddressInImmediate(nn), Dst: operand.SingleRegister(register.A)}, nil
		}
	case 3:
		switch y {
		case 0:
			nn, err := c.NextDoubleByte()
			if err != nil {
				return nil, wrapRam(err)
			}
			return &instr.Jump{Cond: instr.Condition{None: true}, Kind: instr.JumpAbsolute, Target: operand.DoubleImmediate(nn)}, nil
		case 6:
			return instr.SetIME{Value: false}, nil
		case 7:
			return instr.SetIME{Value: true}, nil
		default:
			return nil, cpuerr.InvalidOpcode(op)
		}
	case 4:
		if y > 3 {
			return nil, cpuerr.InvalidOpcode(op)
		}
		nn, err := c.NextDoubleByte()
		if err != nil {
			return nil, wrapRam(err)
		}
		return &instr.Call{Cond: condition(y), Target: operand.DoubleImmediate(nn)}, nil
	case 5:
		if !q {
			return &instr.Push{Src: operand.DoubleRegister(doublePair2(p))}, nil
		}
		if p != 0 {
			return nil, cpuerr.InvalidOpcode(op)
		}
		nn, err := c.NextDoubleByte()
		if err != nil {
			return nil, wrapRam(err)
		}
		return &instr.Call{Cond: instr.Condition{None: true}, Target: operand.DoubleImmediate(nn)}, nil
	case 6:
		n, err := c.NextByte()
		if err != nil {
			return nil, wrapRam(err)
		}
		return aluInstruction(y, operand.Immediate(n)), nil
	default: // z == 7
		return &instr.Restart{Address: uint16(y) * 8}, nil
	}
}

func pairDst(p uint8) operand.DoubleByteDestination {
	if isSP(p) {
		return operand.StackPointer{}
	}
	return operand.DoubleRegister(doublePair(p))
}

func pairSrc(p uint8) operand.DoubleByteSource {
	if isSP(p) {
		return operand.StackPointer{}
	}
	return operand.DoubleRegister(doublePair(p))
}

func nextSigned(c *cpu.Cpu) (int8, error) {
	b, err := c.NextByte()
	if err != nil {
		return 0, wrapRam(err)
	}
	return int8(b), nil
}

func decodePrefixed(op uint8) (instr.Instruction, error) {
	x, y, z, _, _ := splitOpcode(op)
	opnd := byteOperand(z)
	switch x {
	case 0:
		return &instr.UnaryByte{Kind: rotKinds[y], Src: opnd, Dst: opnd}, nil
	case 1:
		return &instr.SingleBit{Op: instr.BitTest, Bit: y, Src: opnd, Dst: opnd}, nil
	case 2:
		return &instr.SingleBit{Op: instr.BitRes, Bit: y, Src: opnd, Dst: opnd}, nil
	default:
		return &instr.SingleBit{Op: instr.BitSet, Bit: y, Src: opnd, Dst: opnd}, nil
	}
}
