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

package cpu

import (
	"github.com/mg-gb/gbcore/pkg/gbcore/memio"
	"github.com/mg-gb/gbcore/pkg/gbcore/ppu"
)

var _ ppu.View = (*Cpu)(nil)

// GetLCDControl implements ppu.View.
func (c *Cpu) GetLCDControl() (uint8, error) {
	return c.Memory.ReadByte(memio.LCDControlAddr)
}

// GetBGScreenCoord implements ppu.View.
func (c *Cpu) GetBGScreenCoord() (x, y uint8, err error) {
	scy, err := c.Memory.ReadByte(memio.BGScrollAddr)
	if err != nil {
		return 0, 0, err
	}
	scx, err := c.Memory.ReadByte(memio.BGScrollAddr + 1)
	if err != nil {
		return 0, 0, err
	}
	return scx, scy, nil
}

// GetWindowScreenCoord implements ppu.View.
func (c *Cpu) GetWindowScreenCoord() (x, y uint8, err error) {
	wy, err := c.Memory.ReadByte(memio.WindowPosAddr)
	if err != nil {
		return 0, 0, err
	}
	wx, err := c.Memory.ReadByte(memio.WindowPosAddr + 1)
	if err != nil {
		return 0, 0, err
	}
	return wx, wy, nil
}

// ReadTileMap implements ppu.View.
func (c *Cpu) ReadTileMap(addr uint16) (uint8, error) {
	return c.Memory.ReadByte(addr)
}
