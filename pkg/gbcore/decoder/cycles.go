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

// Machine-cycle costs (4 clocks each), computed from the same x/y/z
// split as decoding rather than a literal 256-entry table. This
// follows the "taken" cost for every conditional branch uniformly —
// sub-instruction (T-cycle) accuracy and the extra cycle a
// not-taken conditional branch skips are both out of scope (spec.md
// §1's Non-goals).
var unprefixedCycles [256]uint8
var cbCycles [256]uint8

func init() {
	for op := 0; op < 256; op++ {
		unprefixedCycles[op] = unprefixedCycleCost(uint8(op))
		cbCycles[op] = cbCycleCost(uint8(op))
	}
}

func unprefixedCycleCost(op uint8) uint8 {
	x, y, z, _, q := splitOpcode(op)
	touchesHL := z == 6 || (x == 1 && y == 6)
	if x == 0 {
		// INC/DEC r and LD r,n take their operand from r[y], not r[z].
		touchesHL = y == 6
	}
	switch x {
	case 0:
		switch z {
		case 0:
			if y >= 3 {
				return 3 // JR/JR cc, taken
			}
			return 1
		case 1:
			if !q {
				return 3
			}
			return 2
		case 2:
			return 2
		case 3:
			return 2
		case 4, 5:
			if touchesHL {
				return 3
			}
			return 1
		case 6:
			if touchesHL {
				return 3
			}
			return 2
		default:
			return 1
		}
	case 1:
		if op == 0x76 {
			return 1
		}
		if touchesHL {
			return 2
		}
		return 1
	case 2:
		if touchesHL {
			return 2
		}
		return 1
	default: // x == 3
		switch z {
		case 0:
			if y <= 3 {
				return 5
			}
			if y == 5 {
				return 4
			}
			return 3
		case 1:
			return 3
		case 2:
			if y == 4 || y == 6 {
				return 2
			}
			return 4
		case 3:
			return 4
		case 4:
			return 6
		case 5:
			if !q {
				return 4
			}
			return 6
		case 6:
			return 2
		default:
			return 4
		}
	}
}

func cbCycleCost(op uint8) uint8 {
	x, _, z, _, _ := splitOpcode(op)
	if z != 6 {
		return 2
	}
	if x == 1 {
		return 3 // BIT n,(HL)
	}
	return 4 // RLC/RRC/.../SWAP/RES/SET (HL)
}
