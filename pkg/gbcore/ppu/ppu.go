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

// Package ppu declares the narrow read-only view a host rasterizer
// consumes. gbcore implements no rasterization itself (spec.md §1's
// PPU Non-goal); this interface is the seam a host's PPU is built
// against.
package ppu

// View is the interface a rasterizing host reads through. It never
// mutates gbcore state.
type View interface {
	// GetLCDControl returns the raw LCD control register byte.
	GetLCDControl() (uint8, error)
	// GetBGScreenCoord returns the background scroll registers (SCX, SCY).
	GetBGScreenCoord() (x, y uint8, err error)
	// GetWindowScreenCoord returns the window position registers (WX, WY).
	GetWindowScreenCoord() (x, y uint8, err error)
	// ReadTileMap reads one byte out of VRAM by absolute address.
	ReadTileMap(addr uint16) (uint8, error)
}
