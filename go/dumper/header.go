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

import (
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderOffset is where the cartridge header begins within a full
	// Game Boy ROM image.
	HeaderOffset = 0x0100
	// HeaderEnd is the offset one past the global checksum.
	HeaderEnd = 0x0150
)

// DestinationCode is the byte at 0x014A.
type DestinationCode uint8

const (
	DestinationJapanese    DestinationCode = 0x00
	DestinationNonJapanese DestinationCode = 0x01
)

func (d DestinationCode) String() string {
	if d == DestinationJapanese {
		return "Japanese"
	}
	return "Non-Japanese"
}

// Header is a Game Boy cartridge header, read from the start of a
// full ROM image (the header itself lives at offset 0x0100).
type Header struct {
	EntryPoint      [4]byte
	Title           [16]byte
	NewLicenseeCode [2]byte
	SGBFlag         uint8
	CartridgeType   uint8
	ROMSizeCode     uint8
	RAMSizeCode     uint8
	Destination     DestinationCode
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  [2]byte
}

// NewHeader reads a Header from r, which must be positioned at the
// start of the ROM image.
func NewHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderEnd)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.New("rom too small to contain a header")
	}

	h := &Header{}
	copy(h.EntryPoint[:], buf[0x0100:0x0104])
	copy(h.Title[:], buf[0x0134:0x0144])
	copy(h.NewLicenseeCode[:], buf[0x0144:0x0146])
	h.SGBFlag = buf[0x0146]
	h.CartridgeType = buf[0x0147]
	h.ROMSizeCode = buf[0x0148]
	h.RAMSizeCode = buf[0x0149]
	h.Destination = DestinationCode(buf[0x014A])
	h.OldLicenseeCode = buf[0x014B]
	h.MaskROMVersion = buf[0x014C]
	h.HeaderChecksum = buf[0x014D]
	copy(h.GlobalChecksum[:], buf[0x014E:0x0150])

	return h, nil
}

// TitleString trims the title field's trailing NUL padding.
func (h *Header) TitleString() string {
	end := len(h.Title)
	for end > 0 && h.Title[end-1] == 0 {
		end--
	}
	return string(h.Title[:end])
}

// ROMSize returns the ROM size in bytes, per the standard 32KB<<code
// encoding.
func (h *Header) ROMSize() int {
	return 32 * 1024 << h.ROMSizeCode
}

// RAMSize returns the external cartridge RAM size in bytes.
func (h *Header) RAMSize() int {
	switch h.RAMSizeCode {
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	case 0x05:
		return 64 * 1024
	default:
		return 0
	}
}

// SGBSupported reports whether the SGB flag byte enables Super Game
// Boy functions.
func (h *Header) SGBSupported() bool {
	return h.SGBFlag == 0x03
}

// UsesNewLicensee reports whether the new licensee code applies
// rather than the legacy single-byte one (signaled by 0x33).
func (h *Header) UsesNewLicensee() bool {
	return h.OldLicenseeCode == 0x33
}

// VerifyChecksum reports whether the stored header checksum matches
// the one computed over 0x0134-0x014C, the documented boot ROM
// algorithm.
func (h *Header) VerifyChecksum(rom []byte) bool {
	if len(rom) < 0x014D {
		return false
	}
	var sum uint8
	for _, b := range rom[0x0134:0x014D] {
		sum = sum - b - 1
	}
	return sum == h.HeaderChecksum
}

func (h *Header) String() string {
	licensee := "legacy"
	if h.UsesNewLicensee() {
		licensee = string(h.NewLicenseeCode[:])
	}
	return fmt.Sprintf(`Title: %s
Cartridge type: 0x%02X (%s)
ROM size: %d bytes
RAM size: %d bytes
Destination: %s
Licensee: %s
SGB support: %v
Mask ROM version: %d
Header checksum: 0x%02X`,
		h.TitleString(),
		h.CartridgeType, getMapper(int(h.CartridgeType)),
		h.ROMSize(),
		h.RAMSize(),
		h.Destination,
		licensee,
		h.SGBSupported(),
		h.MaskROMVersion,
		h.HeaderChecksum,
	)
}
