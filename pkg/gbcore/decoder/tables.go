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

// Package decoder implements the LR35902 opcode grid: the standard
// x/y/z/p/q bit split (x = bits 7-6, y = bits 5-3, z = bits 2-0,
// p = y>>1, q = y&1) over both the unprefixed table and the
// CB-prefixed sub-table.
package decoder

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/instr"
	"github.com/mg-gb/gbcore/pkg/gbcore/operand"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

func splitOpcode(op uint8) (x, y, z, p uint8, q bool) {
	x = op >> 6
	y = (op >> 3) & 7
	z = op & 7
	p = y >> 1
	q = y&1 != 0
	return
}

// ByteOperand is r[z]: the eight single-byte operands shared by the
// LD grid, the ALU grid, and the unary-byte grid. SingleRegister and
// AddressInRegister both already satisfy ByteSource+ByteDestination
// individually; this just names the combination.
type ByteOperand interface {
	operand.ByteSource
	operand.ByteDestination
}

func byteOperand(z uint8) ByteOperand {
	switch z {
	case 0:
		return operand.SingleRegister(register.B)
	case 1:
		return operand.SingleRegister(register.C)
	case 2:
		return operand.SingleRegister(register.D)
	case 3:
		return operand.SingleRegister(register.E)
	case 4:
		return operand.SingleRegister(register.H)
	case 5:
		return operand.SingleRegister(register.L)
	case 6:
		return operand.AddressInRegister(register.HL)
	default:
		return operand.SingleRegister(register.A)
	}
}

// doublePair is rp[p] for the register-pair slots 0..2 used by 16-bit
// LD/INC/DEC/ADD HL. Slot 3 is SP, which isSP reports and
// pairDst/pairSrc resolve before calling doublePair; the table's slot
// 3 entry is never used.
func doublePair(p uint8) register.Pair {
	return [...]register.Pair{register.BC, register.DE, register.HL, register.HL}[p]
}

// isSP reports whether rp[p] denotes SP rather than a register pair
// (slot 3).
func isSP(p uint8) bool { return p == 3 }

// doublePair2 is rp2[p]: PUSH/POP's pair table, with AF (not SP) in
// slot 3.
func doublePair2(p uint8) register.Pair {
	return [...]register.Pair{register.BC, register.DE, register.HL, register.AF}[p]
}

// aluInstruction is the ALU y-table shared by x=2 (ALU A,r) and
// x=3,z=6 (ALU A,n): ADD, ADC, SUB, SBC, AND, XOR, OR, CP, all against
// the accumulator.
func aluInstruction(y uint8, right operand.ByteSource) instr.Instruction {
	acc := operand.SingleRegister(register.A)
	switch y {
	case 0:
		return &instr.ByteArithmetic{Op: instr.ArithAdd, Left: acc, Right: right, Dst: acc}
	case 1:
		return &instr.ByteArithmetic{Op: instr.ArithAdc, Left: acc, Right: right, Dst: acc}
	case 2:
		return &instr.ByteArithmetic{Op: instr.ArithSub, Left: acc, Right: right, Dst: acc}
	case 3:
		return &instr.ByteArithmetic{Op: instr.ArithSbc, Left: acc, Right: right, Dst: acc}
	case 4:
		return &instr.ByteLogical{Op: instr.LogicalAnd, Left: acc, Right: right, Dst: acc}
	case 5:
		return &instr.ByteLogical{Op: instr.LogicalXor, Left: acc, Right: right, Dst: acc}
	case 6:
		return &instr.ByteLogical{Op: instr.LogicalOr, Left: acc, Right: right, Dst: acc}
	default:
		return &instr.Compare{Left: acc, Right: right}
	}
}

// condition is cc[y] for y in 0..3: NZ, Z, NC, C.
func condition(y uint8) instr.Condition {
	switch y {
	case 0:
		return instr.Condition{Flag: register.FlagZ, Want: false}
	case 1:
		return instr.Condition{Flag: register.FlagZ, Want: true}
	case 2:
		return instr.Condition{Flag: register.FlagC, Want: false}
	default:
		return instr.Condition{Flag: register.FlagC, Want: true}
	}
}

// rotKinds is the CB x=0 y-table: RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL.
var rotKinds = [...]instr.UnaryKind{
	instr.UnaryRLC, instr.UnaryRRC, instr.UnaryRL, instr.UnaryRR,
	instr.UnarySLA, instr.UnarySRA, instr.UnarySwap, instr.UnarySRL,
}
