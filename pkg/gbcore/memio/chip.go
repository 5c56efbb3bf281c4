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

// Package memio implements the memory-mapping fabric: an ordered
// table of address regions, each backed by a Chip, with nested
// sub-fabrics for the I/O window.
package memio

import "github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"

// Chip is the narrow seam every addressable backing store implements:
// RAM, ROM, the boot vector, and each I/O sub-register. Addresses
// passed to ReadByte/WriteByte are local to the chip (0 is the chip's
// first byte), not the CPU's 16-bit space.
type Chip interface {
	Size() int
	ReadByte(addr uint16) (uint8, error)
	WriteByte(addr uint16, value uint8) error
}

// RAMChip is a fixed-size, freely writable byte array.
type RAMChip struct {
	data []byte
}

// NewRAMChip returns a RAM chip of the given size, zero-initialized.
func NewRAMChip(size int) *RAMChip {
	return &RAMChip{data: make([]byte, size)}
}

func (c *RAMChip) Size() int { return len(c.data) }

func (c *RAMChip) ReadByte(addr uint16) (uint8, error) {
	if int(addr) >= len(c.data) {
		return 0, cpuerr.InvalidAddress(addr)
	}
	return c.data[addr], nil
}

func (c *RAMChip) WriteByte(addr uint16, value uint8) error {
	if int(addr) >= len(c.data) {
		return cpuerr.InvalidAddress(addr)
	}
	c.data[addr] = value
	return nil
}

// ROMChip is a fixed-size, read-only byte array.
type ROMChip struct {
	data []byte
}

// NewROMChip returns a ROM chip preloaded with data. The chip's size
// is len(data); it never grows or shrinks.
func NewROMChip(data []byte) *ROMChip {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &ROMChip{data: cp}
}

func (c *ROMChip) Size() int { return len(c.data) }

func (c *ROMChip) ReadByte(addr uint16) (uint8, error) {
	if int(addr) >= len(c.data) {
		return 0, cpuerr.InvalidAddress(addr)
	}
	return c.data[addr], nil
}

func (c *ROMChip) WriteByte(addr uint16, value uint8) error {
	if int(addr) >= len(c.data) {
		return cpuerr.InvalidAddress(addr)
	}
	return cpuerr.WriteOnRom(addr)
}
