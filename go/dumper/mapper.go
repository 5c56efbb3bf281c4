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

package main

var mappers map[int]string

func init() {
	mappers = map[int]string{
		0x00: "ROM ONLY",
		0x01: "MBC1",
		0x02: "MBC1+RAM",
		0x03: "MBC1+RAM+BATTERY",
		0x05: "MBC2",
		0x06: "MBC2+BATTERY",
		0x08: "ROM+RAM",
		0x09: "ROM+RAM+BATTERY",
		0x0B: "MMM01",
		0x0C: "MMM01+RAM",
		0x0D: "MMM01+RAM+BATTERY",
		0x0F: "MBC3+TIMER+BATTERY",
		0x10: "MBC3+TIMER+RAM+BATTERY",
		0x11: "MBC3",
		0x12: "MBC3+RAM",
		0x13: "MBC3+RAM+BATTERY",
		0x19: "MBC5",
		0x1A: "MBC5+RAM",
		0x1B: "MBC5+RAM+BATTERY",
		0x1C: "MBC5+RUMBLE",
		0x1D: "MBC5+RUMBLE+RAM",
		0x1E: "MBC5+RUMBLE+RAM+BATTERY",
		0x20: "MBC6",
		0x22: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
		0xFC: "POCKET CAMERA",
		0xFD: "BANDAI TAMA5",
		0xFE: "HuC3",
		0xFF: "HuC1+RAM+BATTERY",
	}
}

func getMapper(cartridgeType int) string {
	if name, ok := mappers[cartridgeType]; ok {
		return name
	}
	return "Unknown"
}
