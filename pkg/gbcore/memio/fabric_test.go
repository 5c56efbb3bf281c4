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

import (
	"testing"

	"github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"
)

func TestFabricReadWriteRoundTrip(t *testing.T) {
	f := NewFabric(0x100)
	f.Map("ram", 0x10, NewRAMChip(0x10))
	if err := f.WriteByte(0x15, 0x42); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	got, err := f.ReadByte(0x15)
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if got != 0x42 {
		t.Fatalf("ReadByte(0x15) = 0x%02X, want 0x42", got)
	}
}

func TestFabricUnmappedRegion(t *testing.T) {
	f := NewFabric(0x100)
	f.Map("ram", 0x10, NewRAMChip(0x10))
	_, err := f.ReadByte(0x05)
	if err == nil {
		t.Fatalf("expected UnmappedRegion error")
	}
	ramErr, ok := err.(*cpuerr.RamError)
	if !ok || ramErr.Kind != cpuerr.UnmappedRegionKind {
		t.Fatalf("err = %v, want UnmappedRegion", err)
	}
	if ramErr.Addr != 0x05 {
		t.Fatalf("ramErr.Addr = 0x%04X, want 0x0005", ramErr.Addr)
	}
}

func TestFabricRegionBoundary(t *testing.T) {
	f := NewFabric(0x100)
	f.Map("ram", 0x10, NewRAMChip(0x10)) // covers 0x10..0x1F

	if err := f.WriteByte(0x1F, 0x55); err != nil {
		t.Fatalf("write at last byte of region: %v", err)
	}
	got, err := f.ReadByte(0x1F)
	if err != nil || got != 0x55 {
		t.Fatalf("read at last byte of region = (0x%02X, %v), want (0x55, nil)", got, err)
	}

	if _, err := f.ReadByte(0x20); err == nil {
		t.Fatalf("expected UnmappedRegion at the first byte past the region")
	}
}

func TestFabricWriteOnRom(t *testing.T) {
	f := NewFabric(0x100)
	f.Map("rom", 0x00, NewROMChip([]byte{0x01, 0x02}))
	err := f.WriteByte(0x01, 0xFF)
	ramErr, ok := err.(*cpuerr.RamError)
	if !ok || ramErr.Kind != cpuerr.WriteOnRomKind {
		t.Fatalf("err = %v, want WriteOnRom", err)
	}
}

func TestFabricNestedOffsetReconstruction(t *testing.T) {
	inner := NewFabric(0x10)
	inner.Map("reg", 0x04, NewRAMChip(1))
	outer := NewFabric(0x10000)
	outer.Map("io", 0xFF00, inner)

	_, err := outer.ReadByte(0xFF00) // inside inner's span but unmapped locally
	ramErr, ok := err.(*cpuerr.RamError)
	if !ok || ramErr.Kind != cpuerr.UnmappedRegionKind {
		t.Fatalf("err = %v, want UnmappedRegion", err)
	}
	if ramErr.Addr != 0xFF00 {
		t.Fatalf("reconstructed Addr = 0x%04X, want 0xFF00", ramErr.Addr)
	}
}

func TestFabricLittleEndianDoubleByte(t *testing.T) {
	f := NewFabric(0x10)
	f.Map("ram", 0x00, NewRAMChip(0x10))
	if err := f.WriteDoubleByte(0x02, 0xBEEF); err != nil {
		t.Fatalf("WriteDoubleByte: %v", err)
	}
	lo, _ := f.ReadByte(0x02)
	hi, _ := f.ReadByte(0x03)
	if lo != 0xEF || hi != 0xBE {
		t.Fatalf("low=0x%02X high=0x%02X, want low=0xEF high=0xBE", lo, hi)
	}
	got, err := f.ReadDoubleByte(0x02)
	if err != nil || got != 0xBEEF {
		t.Fatalf("ReadDoubleByte = 0x%04X, err=%v", got, err)
	}
}
