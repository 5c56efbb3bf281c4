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

package decoder

import (
	"testing"

	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

// step fetches, decodes and executes one instruction, failing the test
// on any error.
func step(t *testing.T, c *cpu.Cpu) {
	t.Helper()
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute %s: %v", i, err)
	}
}

func TestScenarioLoadBThenLoadAFromB(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x06, 0x12, 0x78) // LD B,0x12; LD A,B
	step(t, c)
	step(t, c)
	if got := c.Registers.Get(register.A); got != 0x12 {
		t.Fatalf("A = 0x%02X, want 0x12", got)
	}
	if got := c.Registers.Get(register.B); got != 0x12 {
		t.Fatalf("B = 0x%02X, want 0x12", got)
	}
	if got := c.Registers.Get(register.F); got != 0 {
		t.Fatalf("F = 0x%02X, want 0x00", got)
	}
	if c.PC() != 0xC003 {
		t.Fatalf("PC = 0x%04X, want 0xC003", c.PC())
	}
}

func TestScenarioAddSetsHalfCarry(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x3E, 0x46, 0x06, 0x0A, 0x80) // LD A,0x46; LD B,0x0A; ADD A,B
	step(t, c)
	step(t, c)
	step(t, c)
	if got := c.Registers.Get(register.A); got != 0x50 {
		t.Fatalf("A = 0x%02X, want 0x50", got)
	}
	if c.Registers.Flag(register.FlagZ) || c.Registers.Flag(register.FlagN) || c.Registers.Flag(register.FlagC) {
		t.Fatalf("expected Z=0, N=0, C=0")
	}
	if !c.Registers.Flag(register.FlagH) {
		t.Fatalf("expected H=1")
	}
}

func TestScenarioAdcWithCarryInWraps(t *testing.T) {
	c := cpu.New()
	// LD A,0x80; LD B,0x7F; SCF; ADC A,B
	load(c, 0xC000, 0x3E, 0x80, 0x06, 0x7F, 0x37, 0x88)
	step(t, c)
	step(t, c)
	step(t, c)
	step(t, c)
	if got := c.Registers.Get(register.A); got != 0x00 {
		t.Fatalf("A = 0x%02X, want 0x00", got)
	}
	if !c.Registers.Flag(register.FlagZ) || !c.Registers.Flag(register.FlagH) || !c.Registers.Flag(register.FlagC) {
		t.Fatalf("expected Z=1, H=1, C=1")
	}
	if c.Registers.Flag(register.FlagN) {
		t.Fatalf("expected N=0")
	}
}

func TestScenarioLoadIndirectHLPostIncrementLeavesMemoryIntact(t *testing.T) {
	c := cpu.New()
	// LD HL,0xC010; LD (HL),0x12; LD A,(HL+)
	load(c, 0xC000, 0x21, 0x10, 0xC0, 0x36, 0x12, 0x2A)
	step(t, c)
	step(t, c)
	step(t, c)
	if got := c.Registers.Get(register.A); got != 0x12 {
		t.Fatalf("A = 0x%02X, want 0x12", got)
	}
	if got := c.Registers.GetPair(register.HL); got != 0xC011 {
		t.Fatalf("HL = 0x%04X, want 0xC011", got)
	}
	mem, err := c.ReadByte(0xC010)
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if mem != 0x12 {
		t.Fatalf("memory at 0xC010 = 0x%02X, want unchanged 0x12", mem)
	}
}

func TestScenarioPushPopRoundTripsThroughOpcodes(t *testing.T) {
	c := cpu.New()
	// LD SP,0xC020; LD BC,0x1234; PUSH BC; POP DE
	load(c, 0xC000, 0x31, 0x20, 0xC0, 0x01, 0x34, 0x12, 0xC5, 0xD1)
	step(t, c)
	step(t, c)
	step(t, c)
	step(t, c)
	if got := c.Registers.GetPair(register.DE); got != 0x1234 {
		t.Fatalf("DE = 0x%04X, want 0x1234", got)
	}
	if c.SP() != 0xC020 {
		t.Fatalf("SP = 0x%04X, want 0xC020", c.SP())
	}
}

func TestScenarioCBRotateAccumulatorVersusNonAccumulator(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x3E, 0xC0, 0xCB, 0x07) // LD A,0xC0; RLC A
	step(t, c)
	step(t, c)
	if got := c.Registers.Get(register.A); got != 0x81 {
		t.Fatalf("A = 0x%02X, want 0x81", got)
	}
	if c.Registers.Flag(register.FlagZ) || c.Registers.Flag(register.FlagN) || c.Registers.Flag(register.FlagH) {
		t.Fatalf("expected Z=0, N=0, H=0")
	}
	if !c.Registers.Flag(register.FlagC) {
		t.Fatalf("expected C=1")
	}

	c2 := cpu.New()
	load(c2, 0xC000, 0x06, 0x00, 0xCB, 0x00) // LD B,0x00; RLC B
	step(t, c2)
	step(t, c2)
	if got := c2.Registers.Get(register.B); got != 0x00 {
		t.Fatalf("B = 0x%02X, want 0x00", got)
	}
	if !c2.Registers.Flag(register.FlagZ) {
		t.Fatalf("RLC B on B=0x00 must set Z (destination-is-not-accumulator path)")
	}
	if c2.Registers.Flag(register.FlagN) || c2.Registers.Flag(register.FlagH) || c2.Registers.Flag(register.FlagC) {
		t.Fatalf("expected N=0, H=0, C=0")
	}
}
