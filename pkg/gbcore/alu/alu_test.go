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

package alu

import "testing"

func TestAddU8(t *testing.T) {
	cases := []struct {
		a, b       uint8
		wantValue  uint8
		wantHalf   bool
		wantCarry  bool
	}{
		{0x0F, 0x01, 0x10, true, false},
		{0xFF, 0x01, 0x00, true, true},
		{0x12, 0x03, 0x15, false, false},
	}
	for _, tc := range cases {
		r := AddU8(tc.a, tc.b)
		if r.Value != tc.wantValue || r.HalfCarry != tc.wantHalf || r.Carry != tc.wantCarry || r.Sub {
			t.Errorf("AddU8(0x%02X, 0x%02X) = %+v, want value=0x%02X half=%v carry=%v",
				tc.a, tc.b, r, tc.wantValue, tc.wantHalf, tc.wantCarry)
		}
	}
}

func TestAddU8WithCarry(t *testing.T) {
	r := AddU8WithCarry(0xFE, 0x01, true)
	if r.Value != 0x00 || !r.Carry || !r.HalfCarry {
		t.Errorf("AddU8WithCarry(0xFE, 0x01, true) = %+v", r)
	}
}

func TestSubU8(t *testing.T) {
	r := SubU8(0x10, 0x01)
	if r.Value != 0x0F || !r.HalfCarry || r.Carry || !r.Sub {
		t.Errorf("SubU8(0x10, 0x01) = %+v", r)
	}
	r = SubU8(0x00, 0x01)
	if r.Value != 0xFF || !r.Carry {
		t.Errorf("SubU8(0x00, 0x01) = %+v, want borrow", r)
	}
}

func TestDeltaU8Dispatch(t *testing.T) {
	inc := DeltaU8(0x0F, 1)
	if inc.Sub || inc.Value != 0x10 || !inc.HalfCarry {
		t.Errorf("DeltaU8(0x0F, +1) = %+v", inc)
	}
	dec := DeltaU8(0x10, -1)
	if !dec.Sub || dec.Value != 0x0F || !dec.HalfCarry {
		t.Errorf("DeltaU8(0x10, -1) = %+v", dec)
	}
}

func TestAdd16HalfCarryAndCarry(t *testing.T) {
	v, half, carry := Add16(0x0FFF, 0x0001)
	if v != 0x1000 || !half || carry {
		t.Errorf("Add16(0x0FFF, 1) = 0x%04X half=%v carry=%v", v, half, carry)
	}
	v, half, carry = Add16(0xFFFF, 0x0001)
	if v != 0x0000 || !carry {
		t.Errorf("Add16(0xFFFF, 1) = 0x%04X half=%v carry=%v", v, half, carry)
	}
}

func TestDaaAfterAddition(t *testing.T) {
	// 0x45 + 0x38 = 0x7D raw binary; DAA should correct to 0x83 BCD.
	value, carry := Daa(0x7D, false, false, false)
	if value != 0x83 || carry {
		t.Errorf("Daa(0x7D) = 0x%02X carry=%v, want 0x83 false", value, carry)
	}
}
