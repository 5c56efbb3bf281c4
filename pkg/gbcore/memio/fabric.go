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

package memio

import "github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"

// region binds a Chip into a span of the fabric's address space.
type region struct {
	name   string
	offset uint16
	size   int
	chip   Chip
}

func (r region) contains(addr uint16) bool {
	return addr >= r.offset && int(addr)-int(r.offset) < r.size
}

// Fabric is a linear, ordered table of mapped regions. A lookup scans
// regions in registration order and uses the first match; an address
// not covered by any region is UnmappedRegion. Fabric itself
// implements Chip, so a fabric can be nested as a sub-region of a
// parent fabric (the I/O window).
type Fabric struct {
	size    int
	regions []region
}

// NewFabric returns an empty fabric spanning size addressable bytes.
func NewFabric(size int) *Fabric {
	return &Fabric{size: size}
}

// Map registers chip at offset under name; the region spans
// chip.Size() bytes. Map does not check the region against the
// fabric's size or against earlier regions: where regions overlap,
// lookups use the one registered first.
func (f *Fabric) Map(name string, offset uint16, chip Chip) {
	f.regions = append(f.regions, region{name: name, offset: offset, size: chip.Size(), chip: chip})
}

func (f *Fabric) find(addr uint16) (region, uint16, error) {
	for _, r := range f.regions {
		if r.contains(addr) {
			return r, addr - r.offset, nil
		}
	}
	return region{}, 0, cpuerr.UnmappedRegion(addr)
}

func (f *Fabric) Size() int { return f.size }

// ReadByte resolves addr to a mapped chip and reads it, reconstructing
// the full address on any RamError the chip reports.
func (f *Fabric) ReadByte(addr uint16) (uint8, error) {
	r, local, err := f.find(addr)
	if err != nil {
		return 0, err
	}
	v, err := r.chip.ReadByte(local)
	if err != nil {
		return 0, offsetRamError(err, r.offset)
	}
	return v, nil
}

// WriteByte resolves addr to a mapped chip and writes it.
func (f *Fabric) WriteByte(addr uint16, value uint8) error {
	r, local, err := f.find(addr)
	if err != nil {
		return err
	}
	if err := r.chip.WriteByte(local, value); err != nil {
		return offsetRamError(err, r.offset)
	}
	return nil
}

func offsetRamError(err error, offset uint16) error {
	if re, ok := err.(*cpuerr.RamError); ok {
		return re.Offset(offset)
	}
	return err
}

// ReadDoubleByte reads a little-endian 16-bit value: addr holds the
// low byte, addr+1 the high byte.
func (f *Fabric) ReadDoubleByte(addr uint16) (uint16, error) {
	lo, err := f.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := f.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteDoubleByte writes a little-endian 16-bit value.
func (f *Fabric) WriteDoubleByte(addr uint16, value uint16) error {
	if err := f.WriteByte(addr, uint8(value)); err != nil {
		return err
	}
	return f.WriteByte(addr+1, uint8(value>>8))
}
