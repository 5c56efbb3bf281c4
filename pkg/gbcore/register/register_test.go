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

package register

import "testing"

func TestSingleRegisterRoundTrip(t *testing.T) {
	b := NewBank()
	b.Set(B, 0x42)
	if got := b.Get(B); got != 0x42 {
		t.Fatalf("Get(B) = 0x%02X, want 0x42", got)
	}
}

func TestPairHighLowBinding(t *testing.T) {
	cases := []struct {
		pair   Pair
		hi, lo Index
		wantLo uint8
	}{
		{AF, A, F, 0x30}, // F's low nibble is masked on every write
		{BC, B, C, 0x34},
		{DE, D, E, 0x34},
		{HL, H, L, 0x34},
	}
	for _, tc := range cases {
		b := NewBank()
		b.SetPair(tc.pair, 0x1234)
		if got := b.Get(tc.hi); got != 0x12 {
			t.Errorf("%s high cell %s = 0x%02X, want 0x12", tc.pair, tc.hi, got)
		}
		if got := b.Get(tc.lo); got != tc.wantLo {
			t.Errorf("%s low cell %s = 0x%02X, want 0x%02X", tc.pair, tc.lo, got, tc.wantLo)
		}
		if want := 0x1200 | uint16(tc.wantLo); b.GetPair(tc.pair) != want {
			t.Errorf("GetPair(%s) = 0x%04X, want 0x%04X", tc.pair, b.GetPair(tc.pair), want)
		}
	}
}

func TestFLowNibbleAlwaysMasked(t *testing.T) {
	b := NewBank()
	b.Set(F, 0xFF)
	if got := b.Get(F); got != 0xF0 {
		t.Fatalf("Set(F, 0xFF) left F = 0x%02X, want 0xF0", got)
	}
	b.SetPair(AF, 0x00FF)
	if got := b.Get(F); got != 0xF0 {
		t.Fatalf("SetPair(AF, 0x00FF) left F = 0x%02X, want 0xF0", got)
	}
}

func TestFlagBitsIndependent(t *testing.T) {
	b := NewBank()
	b.SetFlag(FlagZ, true)
	b.SetFlag(FlagC, true)
	if !b.Flag(FlagZ) || !b.Flag(FlagC) {
		t.Fatalf("expected Z and C set")
	}
	if b.Flag(FlagN) || b.Flag(FlagH) {
		t.Fatalf("expected N and H clear")
	}
	b.SetFlag(FlagZ, false)
	if b.Flag(FlagZ) {
		t.Fatalf("expected Z cleared")
	}
	if !b.Flag(FlagC) {
		t.Fatalf("clearing Z must not disturb C")
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	b := NewBank()
	if _, err := b.ReadSingle(Index(8)); err == nil {
		t.Fatalf("expected error reading out-of-range index")
	}
}
