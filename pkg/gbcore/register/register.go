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

// Package register implements the LR35902 register file: eight 8-bit
// cells addressable singly or in hard-wired pairs, plus the packed
// flag byte. PC and SP are owned by cpu.Cpu, not the register bank.
package register

import "fmt"

// Index addresses one of the eight 8-bit register cells.
type Index uint8

const (
	A Index = iota
	B
	C
	D
	E
	F
	H
	L
)

func (i Index) String() string {
	switch i {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case H:
		return "H"
	case L:
		return "L"
	default:
		return fmt.Sprintf("Index(%d)", uint8(i))
	}
}

// Pair addresses two cells read/written as a 16-bit big-endian value
// (high cell first). The high/low binding is hard-wired, not
// derivable from the Pair value.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
)

func (p Pair) String() string {
	switch p {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	default:
		return fmt.Sprintf("Pair(%d)", uint8(p))
	}
}

func (p Pair) cells() (hi, lo Index) {
	switch p {
	case AF:
		return A, F
	case BC:
		return B, C
	case DE:
		return D, E
	case HL:
		return H, L
	default:
		panic(fmt.Sprintf("register: invalid pair %d", uint8(p)))
	}
}

// Flag addresses one bit of the packed flag byte held in F. The low
// nibble of F carries no flags and is always masked to zero.
type Flag uint8

const (
	FlagZ Flag = 7
	FlagN Flag = 6
	FlagH Flag = 5
	FlagC Flag = 4
)

func (f Flag) mask() uint8 { return 1 << uint8(f) }

// ErrOutOfRange reports an Index value outside the register file's
// eight cells. A Pair value outside the four pairs is not reported
// this way: ReadPair and WritePair panic on it.
type ErrOutOfRange struct {
	Value uint8
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("register: index %d out of range", e.Value)
}

// Bank holds the eight register cells.
type Bank struct {
	cells [8]uint8
}

// NewBank returns a bank with all cells zeroed.
func NewBank() *Bank {
	return &Bank{}
}

// ReadSingle returns the raw value of the addressed cell.
func (b *Bank) ReadSingle(idx Index) (uint8, error) {
	if int(idx) >= len(b.cells) {
		return 0, &ErrOutOfRange{uint8(idx)}
	}
	return b.cells[idx], nil
}

// WriteSingle stores value into the addressed cell. Writing F masks
// the low nibble to zero regardless of the bits supplied.
func (b *Bank) WriteSingle(idx Index, value uint8) error {
	if int(idx) >= len(b.cells) {
		return &ErrOutOfRange{uint8(idx)}
	}
	if idx == F {
		value &= 0xF0
	}
	b.cells[idx] = value
	return nil
}

// Get is ReadSingle for one of the named constants, which are always
// in range; it panics rather than returning an error a caller could
// never hit.
func (b *Bank) Get(idx Index) uint8 {
	v, err := b.ReadSingle(idx)
	if err != nil {
		panic(err)
	}
	return v
}

// Set is WriteSingle for one of the named constants.
func (b *Bank) Set(idx Index, value uint8) {
	if err := b.WriteSingle(idx, value); err != nil {
		panic(err)
	}
}

// ReadPair returns the 16-bit value of a register pair, high cell in
// the top byte.
func (b *Bank) ReadPair(p Pair) (uint16, error) {
	hi, lo := p.cells()
	hv, err := b.ReadSingle(hi)
	if err != nil {
		return 0, err
	}
	lv, err := b.ReadSingle(lo)
	if err != nil {
		return 0, err
	}
	return uint16(hv)<<8 | uint16(lv), nil
}

// WritePair stores a 16-bit value across a register pair. Writing AF
// masks F's low nibble to zero through WriteSingle.
func (b *Bank) WritePair(p Pair, value uint16) error {
	hi, lo := p.cells()
	if err := b.WriteSingle(hi, uint8(value>>8)); err != nil {
		return err
	}
	return b.WriteSingle(lo, uint8(value))
}

// GetPair/SetPair are the panicking convenience forms of
// ReadPair/WritePair, for use with the named Pair constants.
func (b *Bank) GetPair(p Pair) uint16 {
	v, err := b.ReadPair(p)
	if err != nil {
		panic(err)
	}
	return v
}

func (b *Bank) SetPair(p Pair, value uint16) {
	if err := b.WritePair(p, value); err != nil {
		panic(err)
	}
}

// Flag reads one bit of the packed flag byte.
func (b *Bank) Flag(f Flag) bool {
	return b.cells[F]&f.mask() != 0
}

// SetFlag writes one bit of the packed flag byte, leaving the others
// and the masked low nibble untouched.
func (b *Bank) SetFlag(f Flag, set bool) {
	if set {
		b.cells[F] |= f.mask()
	} else {
		b.cells[F] &^= f.mask()
	}
	b.cells[F] &= 0xF0
}
