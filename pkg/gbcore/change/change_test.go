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

package change

import (
	"testing"

	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

func TestSingleRegisterCommit(t *testing.T) {
	c := cpu.New()
	ch := SingleRegister{Index: register.B, Value: 0x42}
	if err := ch.Commit(c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := c.Registers.Get(register.B); got != 0x42 {
		t.Fatalf("B = 0x%02X, want 0x42", got)
	}
}

func TestFlagsTriStateLeavesUntouchedFlagsAlone(t *testing.T) {
	c := cpu.New()
	c.Registers.SetFlag(register.FlagC, true)
	ch := Flags{Z: Set(true), N: Set(false), H: Set(false), C: Preserve()}
	if err := ch.Commit(c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !c.Registers.Flag(register.FlagZ) {
		t.Fatalf("Z not set")
	}
	if !c.Registers.Flag(register.FlagC) {
		t.Fatalf("Preserve() must not clear a previously-set flag")
	}
}

func TestPushOrderingSPThenWriteReadsNewSP(t *testing.T) {
	c := cpu.New()
	c.SetSP(0xFFFE)
	c.Registers.SetPair(register.BC, 0xBEEF)

	push := List{Changes: []Change{
		StackPointer{Value: c.SP() - 2},
		MemoryDoubleByte{Address: StackPointerAddress{}, Value: 0xBEEF},
	}}
	if err := push.Commit(c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if c.SP() != 0xFFFC {
		t.Fatalf("SP = 0x%04X, want 0xFFFC", c.SP())
	}
	got, err := c.ReadDoubleByte(0xFFFC)
	if err != nil {
		t.Fatalf("ReadDoubleByte: %v", err)
	}
	if got != 0xBEEF {
		t.Fatalf("memory at new SP = 0x%04X, want 0xBEEF — commit-time address resolution broken", got)
	}
}

func TestOffsetAddressReadsRegisterAtCommitTime(t *testing.T) {
	c := cpu.New()
	c.Registers.Set(register.C, 0x10)
	ch := MemoryByte{Address: OffsetAddress{Base: 0xFF00, Offset: register.C}, Value: 0x99}
	if err := ch.Commit(c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	got, err := c.ReadByte(0xFF10)
	if err != nil || got != 0x99 {
		t.Fatalf("ReadByte(0xFF10) = 0x%02X, err=%v", got, err)
	}
}

func TestNoOpCommitsNothing(t *testing.T) {
	c := cpu.New()
	c.Registers.Set(register.A, 0x11)
	if err := (NoOp{}).Commit(c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := c.Registers.Get(register.A); got != 0x11 {
		t.Fatalf("A changed by NoOp: 0x%02X", got)
	}
}
