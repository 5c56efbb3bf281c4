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

// load writes program bytes into WRAM and points PC at the start of
// them, since the boot ROM region is read-only.
func load(c *cpu.Cpu, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		if err := c.WriteByte(addr+uint16(i), b); err != nil {
			panic(err)
		}
	}
	c.SetPC(addr)
}

func TestDecodeNop(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x00)
	i, cycles, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if i.String() != "nop" {
		t.Fatalf("got %s, want nop", i)
	}
	if cycles != 1 {
		t.Fatalf("cycles = %d, want 1", cycles)
	}
	if c.PC() != 0xC001 {
		t.Fatalf("PC = 0x%04X, want 0xC001", c.PC())
	}
}

func TestDecodeAndExecuteLDBn(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x06, 0x42) // LD B,0x42
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := c.Registers.Get(register.B); got != 0x42 {
		t.Fatalf("B = 0x%02X, want 0x42", got)
	}
	if c.PC() != 0xC002 {
		t.Fatalf("PC = 0x%04X, want 0xC002", c.PC())
	}
}

func TestDecodeAddAB(t *testing.T) {
	c := cpu.New()
	c.Registers.Set(register.A, 0x10)
	c.Registers.Set(register.B, 0x05)
	load(c, 0xC000, 0x80) // ADD A,B
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := c.Registers.Get(register.A); got != 0x15 {
		t.Fatalf("A = 0x%02X, want 0x15", got)
	}
}

func TestDecodeCBRotateSwapSpecialCase(t *testing.T) {
	c := cpu.New()
	c.Registers.Set(register.B, 0x12)
	load(c, 0xC000, 0xCB, 0x30) // SWAP B
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := c.Registers.Get(register.B); got != 0x21 {
		t.Fatalf("B = 0x%02X, want 0x21", got)
	}
}

func TestDecodeCBBitTest(t *testing.T) {
	c := cpu.New()
	c.Registers.Set(register.A, 0x80)
	load(c, 0xC000, 0xCB, 0x7F) // BIT 7,A
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Registers.Flag(register.FlagZ) {
		t.Fatalf("BIT 7,A with A=0x80 must clear Z")
	}
}

func TestDecodeHaltIsNotLoadHLHL(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x76) // x=1,y=6,z=6
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if i.String() != "halt" {
		t.Fatalf("0x76 decoded to %q, want halt", i)
	}
}

func TestDecodeInvalidOpcode(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0xD3) // invalid on GB
	_, _, err := FetchAndDecode(c)
	if err == nil {
		t.Fatalf("expected an invalid-opcode error")
	}
}

func TestDecodeJumpRelativeAddressesPastTheInstruction(t *testing.T) {
	c := cpu.New()
	load(c, 0xC000, 0x18, 0x05) // JR +5
	i, _, err := FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	// PC is already 0xC002 (past opcode + operand) when the jump computes.
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.PC() != 0xC007 {
		t.Fatalf("PC = 0x%04X, want 0xC007", c.PC())
	}
}

func TestDecodePushPopViaOpcodes(t *testing.T) {
	c := cpu.New()
	c.SetSP(0xFFFE)
	c.Registers.SetPair(register.DE, 0xCAFE)
	load(c, 0xC000, 0xD5, 0xE1) // PUSH DE; POP HL
	i, _, err := FetchAndDecode(c)
	if err != nil || i.Execute(c) != nil {
		t.Fatalf("PUSH decode/execute failed: %v", err)
	}
	i, _, err = FetchAndDecode(c)
	if err != nil {
		t.Fatalf("FetchAndDecode: %v", err)
	}
	if err := i.Execute(c); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := c.Registers.GetPair(register.HL); got != 0xCAFE {
		t.Fatalf("HL = 0x%04X, want 0xCAFE", got)
	}
}
