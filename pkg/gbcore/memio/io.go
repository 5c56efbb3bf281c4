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

import "github.com/mg-gb/gbcore/pkg/gbcore/timer"

// I/O window sub-address layout, relative to the window's base
// (0xFF00 in the parent fabric).
const (
	ioSize = 0x80

	offJoypad    = 0x00
	offSerial    = 0x01
	offDivider   = 0x04
	offTimer     = 0x05
	offAudio     = 0x10
	offWave      = 0x30
	offLCDCtrl   = 0x40
	offLCDStatus = 0x41
	offBGScroll  = 0x42
	offWindowPos = 0x4A
	offBGPalette = 0x47
)

// LCDControlAddr, BGScrollAddr and WindowPosAddr are the absolute CPU
// addresses ppu.View reads through the full fabric.
const (
	LCDControlAddr uint16 = 0xFF00 + offLCDCtrl
	BGScrollAddr   uint16 = 0xFF00 + offBGScroll
	WindowPosAddr  uint16 = 0xFF00 + offWindowPos
)

// NewIOFabric assembles the I/O window's sub-fabric: joypad, serial,
// divider, timer, an audio register stub, wave RAM, and the LCD/BG/
// window registers spec.md names. div and tmr are mapped directly, so
// the caller retains live pointers to tick them each step.
func NewIOFabric(div *timer.Divider, tmr *timer.Timer) *Fabric {
	f := NewFabric(ioSize)
	f.Map("joypad", offJoypad, NewRAMChip(1))
	f.Map("serial", offSerial, NewRAMChip(2))
	f.Map("divider", offDivider, div)
	f.Map("timer", offTimer, tmr)
	f.Map("audio", offAudio, NewRAMChip(0x17))
	f.Map("wave", offWave, NewRAMChip(0x10))
	f.Map("lcd-control", offLCDCtrl, NewRAMChip(1))
	f.Map("lcd-status", offLCDStatus, NewRAMChip(1))
	f.Map("bg-scroll", offBGScroll, NewRAMChip(2))
	f.Map("window-position", offWindowPos, NewRAMChip(2))
	f.Map("bg-palette", offBGPalette, NewRAMChip(1))
	return f
}
