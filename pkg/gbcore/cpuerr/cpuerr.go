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

// Package cpuerr defines the error taxonomy that crosses the
// fabric/cpu/host boundaries: memory faults (RamError, a plain leaf
// error) and execution faults (ExecutionError), the latter wrapped
// with github.com/pkg/errors so a host can print a cause chain with
// %+v instead of a bare string.
package cpuerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// RamKind distinguishes the three ways a memory access can fail.
type RamKind int

const (
	// InvalidAddressKind marks an address inside a mapped region that
	// the region's chip rejects (a sub-address past the chip's data,
	// or one the chip does not expose).
	InvalidAddressKind RamKind = iota
	// UnmappedRegionKind marks an address inside the 16-bit space but
	// not covered by any mapped region (an open-bus gap).
	UnmappedRegionKind
	// WriteOnRomKind marks a write attempted against a read-only chip.
	WriteOnRomKind
)

// RamError is returned by a Chip or Fabric on a failed access. Addr is
// reconstructed as the error bubbles through nested fabrics: each
// level that forwards the error adds back the offset it subtracted
// before delegating to its child.
type RamError struct {
	Kind RamKind
	Addr uint16
}

func (e *RamError) Error() string {
	switch e.Kind {
	case InvalidAddressKind:
		return fmt.Sprintf("invalid address 0x%04X", e.Addr)
	case UnmappedRegionKind:
		return fmt.Sprintf("unmapped region at 0x%04X", e.Addr)
	case WriteOnRomKind:
		return fmt.Sprintf("write on read-only chip at 0x%04X", e.Addr)
	default:
		return fmt.Sprintf("ram error at 0x%04X", e.Addr)
	}
}

// InvalidAddress builds an InvalidAddressKind RamError.
func InvalidAddress(addr uint16) *RamError { return &RamError{InvalidAddressKind, addr} }

// UnmappedRegion builds an UnmappedRegionKind RamError.
func UnmappedRegion(addr uint16) *RamError { return &RamError{UnmappedRegionKind, addr} }

// WriteOnRom builds a WriteOnRomKind RamError.
func WriteOnRom(addr uint16) *RamError { return &RamError{WriteOnRomKind, addr} }

// Offset returns a copy of e with by added back onto Addr, for a
// parent fabric reconstructing the full address of a fault raised by
// a nested sub-fabric it had offset before delegating.
func (e *RamError) Offset(by uint16) *RamError {
	return &RamError{Kind: e.Kind, Addr: e.Addr + by}
}

// ExecutionKind distinguishes the two ways fetch-decode-execute can
// fail.
type ExecutionKind int

const (
	// RamFaultKind wraps a RamError raised while fetching, reading an
	// operand, or committing a change.
	RamFaultKind ExecutionKind = iota
	// InvalidOpcodeKind marks a byte the decoder has no table entry
	// for.
	InvalidOpcodeKind
	// NotImplementedKind marks an opcode the core recognizes but
	// deliberately does not execute (STOP, HALT — see DESIGN.md).
	NotImplementedKind
)

// ExecutionError is the error type returned by every
// Instruction.Execute/ComputeChange.
type ExecutionError struct {
	Kind   ExecutionKind
	Ram    *RamError
	Opcode uint8
	Name   string
	cause  error
}

func (e *ExecutionError) Error() string { return e.cause.Error() }

// Cause unwraps to the root error, for github.com/pkg/errors-style
// cause-chain printing.
func (e *ExecutionError) Cause() error { return errors.Cause(e.cause) }

// FromRam wraps a RamError as an ExecutionError.
func FromRam(err *RamError) *ExecutionError {
	return &ExecutionError{
		Kind:  RamFaultKind,
		Ram:   err,
		cause: errors.Wrap(err, "memory fault"),
	}
}

// InvalidOpcode builds an ExecutionError for an opcode byte the
// decoder could not resolve.
func InvalidOpcode(opcode uint8) *ExecutionError {
	return &ExecutionError{
		Kind:   InvalidOpcodeKind,
		Opcode: opcode,
		cause:  errors.Errorf("invalid opcode 0x%02X", opcode),
	}
}

// NotImplemented builds an ExecutionError for a recognized but
// unexecuted instruction (STOP, HALT).
func NotImplemented(name string) *ExecutionError {
	return &ExecutionError{
		Kind:  NotImplementedKind,
		Name:  name,
		cause: errors.Errorf("%s is not implemented by the core", name),
	}
}
