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

// Package cpu defines the mutable aggregate every other gbcore layer
// operates on: the register bank, the memory fabric, and the PC/SP/
// IME cells, plus the read/write/fetch primitives built on them.
package cpu

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/bootrom"
	"github.com/mg-gb/gbcore/pkg/gbcore/memio"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
	"github.com/mg-gb/gbcore/pkg/gbcore/timer"
)

// Memory map offsets, per spec.md §3.
const (
	BootROMOffset uint16 = 0x0000
	VRAMOffset    uint16 = 0x8000
	WRAMOffset    uint16 = 0xC000
	OAMOffset     uint16 = 0xFE00
	IOOffset      uint16 = 0xFF00
	// HRAMOffset is not part of spec.md's memory map, but every real
	// power-on stack pointer (and the boot ROM's own SP setup) targets
	// this window; omitting it would make SP's conventional 0xFFFE
	// reset value point at an UnmappedRegion fault on the very first
	// PUSH. Supplemented from original_source's RAM_MAPPINGS.
	HRAMOffset uint16 = 0xFF80

	vramSize = 0x2000
	wramSize = 0x2000
	oamSize  = 0xA0
	hramSize = 0x7F
)

// Cpu is the LR35902 core: register file, memory fabric, PC, SP and
// the interrupt-master-enable flag.
type Cpu struct {
	Registers *register.Bank
	Memory    *memio.Fabric

	Divider *timer.Divider
	Timer   *timer.Timer

	pc  uint16
	sp  uint16
	ime bool
}

// New constructs a power-on Cpu: boot ROM mapped at 0x0000, fresh
// VRAM/WRAM/OAM, the I/O window with a divider and timer, PC at 0,
// SP at 0, and IME true (see DESIGN.md's Open Question on IME's
// power-on value).
func New() *Cpu {
	div := &timer.Divider{}
	tmr := &timer.Timer{}

	mem := memio.NewFabric(0x10000)
	mem.Map("boot-rom", BootROMOffset, bootrom.NewChip())
	mem.Map("vram", VRAMOffset, memio.NewRAMChip(vramSize))
	mem.Map("wram", WRAMOffset, memio.NewRAMChip(wramSize))
	mem.Map("oam", OAMOffset, memio.NewRAMChip(oamSize))
	mem.Map("io", IOOffset, memio.NewIOFabric(div, tmr))
	mem.Map("hram", HRAMOffset, memio.NewRAMChip(hramSize))

	return &Cpu{
		Registers: register.NewBank(),
		Memory:    mem,
		Divider:   div,
		Timer:     tmr,
		pc:        0,
		sp:        0,
		ime:       true,
	}
}

// PC returns the program counter.
func (c *Cpu) PC() uint16 { return c.pc }

// SetPC overwrites the program counter.
func (c *Cpu) SetPC(value uint16) { c.pc = value }

// SP returns the stack pointer.
func (c *Cpu) SP() uint16 { return c.sp }

// SetSP overwrites the stack pointer.
func (c *Cpu) SetSP(value uint16) { c.sp = value }

// IME returns the interrupt-master-enable flag.
func (c *Cpu) IME() bool { return c.ime }

// SetIME overwrites the interrupt-master-enable flag.
func (c *Cpu) SetIME(value bool) { c.ime = value }

// NextByte reads the byte at PC and advances PC by one, the fetch
// primitive every operand/instruction immediate read is built on.
func (c *Cpu) NextByte() (uint8, error) {
	v, err := c.Memory.ReadByte(c.pc)
	if err != nil {
		return 0, err
	}
	c.pc++
	return v, nil
}

// NextDoubleByte reads the little-endian word at PC and advances PC
// by two.
func (c *Cpu) NextDoubleByte() (uint16, error) {
	v, err := c.Memory.ReadDoubleByte(c.pc)
	if err != nil {
		return 0, err
	}
	c.pc += 2
	return v, nil
}

// ReadByte/WriteByte/ReadDoubleByte/WriteDoubleByte forward to the
// memory fabric.
func (c *Cpu) ReadByte(addr uint16) (uint8, error) { return c.Memory.ReadByte(addr) }

func (c *Cpu) WriteByte(addr uint16, value uint8) error { return c.Memory.WriteByte(addr, value) }

func (c *Cpu) ReadDoubleByte(addr uint16) (uint16, error) { return c.Memory.ReadDoubleByte(addr) }

func (c *Cpu) WriteDoubleByte(addr uint16, value uint16) error {
	return c.Memory.WriteDoubleByte(addr, value)
}

// Tick advances the divider and timer by the given number of machine
// cycles. A host step loop calls this once per fetched instruction
// with that instruction's cycle cost.
func (c *Cpu) Tick(cycles uint8) {
	c.Divider.Tick(cycles)
	c.Timer.Tick(cycles)
}
