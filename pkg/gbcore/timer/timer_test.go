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

package timer

import "testing"

func TestDividerAnyWriteZeroes(t *testing.T) {
	d := &Divider{counter: 0xABCD}
	if err := d.WriteByte(0, 0x99); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if d.counter != 0 {
		t.Fatalf("counter = 0x%04X after write, want 0", d.counter)
	}
}

func TestDividerOnlyHighByteVisible(t *testing.T) {
	d := &Divider{counter: 0x1234}
	got, err := d.ReadByte(0)
	if err != nil || got != 0x12 {
		t.Fatalf("ReadByte = 0x%02X, err=%v, want 0x12", got, err)
	}
}

func TestDividerTick(t *testing.T) {
	d := &Divider{}
	d.Tick(255)
	d.Tick(1)
	if d.counter != 256 {
		t.Fatalf("counter = %d, want 256", d.counter)
	}
}

func TestTimerDisabledDoesNotTick(t *testing.T) {
	tm := &Timer{control: 0x00}
	for i := 0; i < 40; i++ {
		tm.Tick(250) // 10000 cycles in total
	}
	if tm.counter != 0 {
		t.Fatalf("counter = %d, want 0 while disabled", tm.counter)
	}
}

func TestTimerOverflowReloadsFromModulo(t *testing.T) {
	tm := &Timer{control: 0x05, modulo: 0x10, counter: 0xFF} // enabled, divisor=16
	tm.Tick(16)
	if tm.counter != 0x10 {
		t.Fatalf("counter = 0x%02X after overflow, want modulo 0x10", tm.counter)
	}
}

func TestTimerControlWritesMaskToThreeBits(t *testing.T) {
	tm := &Timer{}
	if err := tm.WriteByte(2, 0xFF); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if tm.control != 0x07 {
		t.Fatalf("control = 0x%02X, want 0x07", tm.control)
	}
}

func TestTimerCounterIsWritable(t *testing.T) {
	tm := &Timer{}
	if err := tm.WriteByte(0, 0x55); err != nil {
		t.Fatalf("WriteByte(counter): %v", err)
	}
	got, _ := tm.ReadByte(0)
	if got != 0x55 {
		t.Fatalf("counter = 0x%02X, want 0x55", got)
	}
}
