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

// Package alu implements the byte-wide arithmetic primitives the
// instruction kernels compose: add/sub with and without carry-in,
// signed-delta dispatch, and decimal adjust.
package alu

// Result is the outcome of an 8-bit add or subtract: the wrapped
// result byte plus the three flags that depend on the operation
// (Zero is left to the caller, since several kernels override it).
type Result struct {
	Value     uint8
	Sub       bool
	HalfCarry bool
	Carry     bool
}

// AddU8 adds b to a with no carry-in.
func AddU8(a, b uint8) Result {
	return addWithCarry(a, b, false)
}

// AddU8WithCarry adds b and the carry-in bit to a.
func AddU8WithCarry(a, b uint8, carryIn bool) Result {
	return addWithCarry(a, b, carryIn)
}

func addWithCarry(a, b uint8, carryIn bool) Result {
	var cin uint16
	if carryIn {
		cin = 1
	}
	sum := uint16(a) + uint16(b) + cin
	half := (uint16(a&0x0F) + uint16(b&0x0F) + cin) > 0x0F
	return Result{
		Value:     uint8(sum),
		Sub:       false,
		HalfCarry: half,
		Carry:     sum > 0xFF,
	}
}

// SubU8 subtracts b from a with no borrow-in.
func SubU8(a, b uint8) Result {
	return subWithCarry(a, b, false)
}

// SubU8WithCarry subtracts b and the borrow-in bit from a.
func SubU8WithCarry(a, b uint8, carryIn bool) Result {
	return subWithCarry(a, b, carryIn)
}

func subWithCarry(a, b uint8, carryIn bool) Result {
	var cin int
	if carryIn {
		cin = 1
	}
	diff := int(a) - int(b) - cin
	half := int(a&0x0F)-int(b&0x0F)-cin < 0
	return Result{
		Value:     uint8(diff),
		Sub:       true,
		HalfCarry: half,
		Carry:     diff < 0,
	}
}

// DeltaU8 adds a signed delta to a by dispatching to AddU8 or SubU8
// depending on the delta's sign, so the half-carry/carry flags come
// out of the same machinery a plain 8-bit INC/DEC would use.
func DeltaU8(a uint8, delta int8) Result {
	if delta >= 0 {
		return AddU8(a, uint8(delta))
	}
	return SubU8(a, uint8(-int16(delta)))
}

// Add16 adds two 16-bit values, reporting half-carry and carry out of
// bit 11 and bit 15 respectively (the pair-arithmetic flag rule).
func Add16(a, b uint16) (value uint16, halfCarry, carry bool) {
	sum := uint32(a) + uint32(b)
	half := (a&0x0FFF)+(b&0x0FFF) > 0x0FFF
	return uint16(sum), half, sum > 0xFFFF
}

// AddSignedToU16 adds a signed byte to a 16-bit base, reporting
// half-carry/carry out of the low byte as the SP+e8/HL=SP+e8
// instructions require (the addend is sign-extended, but the flags
// are computed as if adding the unsigned low byte to the base's low
// byte, matching the real hardware's 8-bit ALU path).
func AddSignedToU16(base uint16, delta int8) (value uint16, halfCarry, carry bool) {
	lo := AddU8(uint8(base), uint8(delta))
	return uint16(int32(base) + int32(delta)), lo.HalfCarry, lo.Carry
}

// Daa applies the post-BCD-addition/subtraction correction to the
// accumulator, given the flags left over from the preceding add or
// subtract.
func Daa(a uint8, sub, halfCarry, carry bool) (value uint8, carryOut bool) {
	correction := uint8(0)
	carryOut = carry
	if halfCarry || (!sub && a&0x0F > 0x09) {
		correction |= 0x06
	}
	if carry || (!sub && a > 0x99) {
		correction |= 0x60
		carryOut = true
	}
	if sub {
		value = a - correction
	} else {
		value = a + correction
	}
	return value, carryOut
}
