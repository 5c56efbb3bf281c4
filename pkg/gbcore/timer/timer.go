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

// Package timer implements the Game Boy's divider and programmable
// timer hardware. Both types satisfy memio.Chip (Size/ReadByte/
// WriteByte) by signature only, so they can be mapped directly into
// the I/O fabric without this package importing memio.
package timer

import "github.com/mg-gb/gbcore/pkg/gbcore/cpuerr"

// Divider is the free-running 16-bit counter. Only its high byte is
// addressable; any write to it, regardless of the value supplied,
// resets the whole 16-bit counter to zero.
type Divider struct {
	counter uint16
}

func (d *Divider) Size() int { return 1 }

func (d *Divider) ReadByte(addr uint16) (uint8, error) {
	if addr != 0 {
		return 0, cpuerr.InvalidAddress(addr)
	}
	return uint8(d.counter >> 8), nil
}

func (d *Divider) WriteByte(addr uint16, value uint8) error {
	if addr != 0 {
		return cpuerr.InvalidAddress(addr)
	}
	d.counter = 0
	return nil
}

// Tick advances the divider by the given number of machine cycles.
func (d *Divider) Tick(cycles uint8) {
	d.counter += uint16(cycles)
}

// clockDivisors maps the timer control register's two select bits to
// the number of divider ticks between counter increments.
var clockDivisors = [4]uint16{1024, 16, 64, 256}

// Timer is the programmable counter: a modulo-reloaded 8-bit counter
// that increments once every N divider ticks, N selected by the
// control register's clock-select bits, gated by the control
// register's enable bit. Its I/O window is three bytes: counter (0),
// modulo (1), control (2).
type Timer struct {
	counter    uint8
	modulo     uint8
	control    uint8
	accumulator uint16
}

func (t *Timer) Size() int { return 3 }

func (t *Timer) ReadByte(addr uint16) (uint8, error) {
	switch addr {
	case 0:
		return t.counter, nil
	case 1:
		return t.modulo, nil
	case 2:
		return t.control, nil
	default:
		return 0, cpuerr.InvalidAddress(addr)
	}
}

func (t *Timer) WriteByte(addr uint16, value uint8) error {
	switch addr {
	case 0:
		t.counter = value
	case 1:
		t.modulo = value
	case 2:
		t.control = value & 0x07
	default:
		return cpuerr.InvalidAddress(addr)
	}
	return nil
}

// Enabled reports the control register's enable bit.
func (t *Timer) Enabled() bool { return t.control&0x04 != 0 }

func (t *Timer) divisor() uint16 {
	return clockDivisors[t.control&0x03]
}

// Tick advances the programmable counter by the given number of
// machine cycles, reloading from the modulo register on overflow.
// The reload happens synchronously within this call; no interrupt
// line is latched (interrupt servicing is outside the core).
func (t *Timer) Tick(cycles uint8) {
	if !t.Enabled() {
		return
	}
	t.accumulator += uint16(cycles)
	div := t.divisor()
	for t.accumulator >= div {
		t.accumulator -= div
		if t.counter == 0xFF {
			t.counter = t.modulo
		} else {
			t.counter++
		}
	}
}
