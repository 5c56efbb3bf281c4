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

// Command gbcore-debugger is a termui terminal front-end that steps
// the LR35902 core one instruction at a time and renders register,
// flag, RAM and disassembly panes. It is a host-side debug collaborator
// and never reaches into core internals beyond Cpu/Instruction.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/mg-gb/gbcore/pkg/gbcore/cpu"
	"github.com/mg-gb/gbcore/pkg/gbcore/decoder"
	"github.com/mg-gb/gbcore/pkg/gbcore/register"
)

var (
	gb             *cpu.Cpu
	loadAddr       uint16
	paragraphCPU   *widgets.Paragraph
	paragraphCode  *widgets.Paragraph
	paragraphRam0  *widgets.Paragraph
	paragraphRam1  *widgets.Paragraph
	paragraphTips  *widgets.Paragraph
	lastErr        error
)

func renderCpu(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	flags := []register.Flag{register.FlagZ, register.FlagN, register.FlagH, register.FlagC}
	symbols := []rune{'Z', 'N', 'H', 'C'}

	sb.WriteString("FLAGS: ")
	for i, f := range flags {
		sb.WriteRune('[')
		sb.WriteRune(symbols[i])
		sb.WriteRune(']')
		sb.WriteString("(fg:")
		if gb.Registers.Flag(f) {
			sb.WriteString("green")
		} else {
			sb.WriteString("red")
		}
		sb.WriteString(") ")
	}
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("PC: $%04X  SP: $%04X  IME: %v", gb.PC(), gb.SP(), gb.IME()))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("A: $%02X  F: $%02X", gb.Registers.Get(register.A), gb.Registers.Get(register.F)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("B: $%02X  C: $%02X  (BC: $%04X)", gb.Registers.Get(register.B), gb.Registers.Get(register.C), gb.Registers.GetPair(register.BC)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("D: $%02X  E: $%02X  (DE: $%04X)", gb.Registers.Get(register.D), gb.Registers.Get(register.E), gb.Registers.GetPair(register.DE)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("H: $%02X  L: $%02X  (HL: $%04X)", gb.Registers.Get(register.H), gb.Registers.Get(register.L), gb.Registers.GetPair(register.HL)))
	if lastErr != nil {
		sb.WriteRune('\n')
		sb.WriteString(fmt.Sprintf("ERROR: %v", lastErr))
	}

	p.Text = sb.String()
}

func renderRam(p *widgets.Paragraph, addr uint16, numRow, numCol int) {
	curAddr := addr
	sb := &strings.Builder{}
	for row := 0; row < numRow; row++ {
		sb.WriteString(fmt.Sprintf("$%04X:", curAddr))
		for col := 0; col < numCol; col++ {
			sb.WriteRune(' ')
			v, err := gb.ReadByte(curAddr)
			if err != nil {
				sb.WriteString("--")
			} else {
				sb.WriteString(fmt.Sprintf("%02X", v))
			}
			curAddr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

// renderCode disassembles from PC forward without executing, by
// decoding against a throwaway copy of the Cpu: the copy shares the
// memory fabric (decode only reads) but owns its own PC, so stepping
// the preview never perturbs the real machine.
func renderCode(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	preview := *gb
	for i := 0; i < 20; i++ {
		pc := preview.PC()
		inst, _, err := decoder.FetchAndDecode(&preview)
		if err != nil {
			sb.WriteString(fmt.Sprintf("$%04X: <error: %v>\n", pc, err))
			break
		}
		line := fmt.Sprintf("$%04X: %s\n", pc, inst)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("[%s](fg:cyan)", strings.TrimSuffix(line, "\n")))
			sb.WriteRune('\n')
		} else {
			sb.WriteString(line)
		}
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = Step Instruction    R = Reload/Reset    Q = Quit"
}

func draw() {
	renderRam(paragraphRam0, 0xC000, 12, 16)
	renderRam(paragraphRam1, loadAddr, 12, 16)
	renderCpu(paragraphCPU)
	renderCode(paragraphCode)
	renderTips(paragraphTips)

	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode, paragraphTips)
}

func loadCPU(path string, addr uint16, start uint16) {
	gb = cpu.New()
	lastErr = nil
	if path == "" {
		gb.SetPC(start)
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("could not read %s: %v", path, err)
	}
	for i, b := range data {
		if err := gb.WriteByte(addr+uint16(i), b); err != nil {
			log.Fatalf("could not load %s at $%04X: %v", path, addr, err)
		}
	}
	gb.SetPC(start)
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM $C000"
	paragraphRam0.SetRect(0, 0, 56, 15)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "Program RAM"
	paragraphRam1.SetRect(0, 15, 56, 30)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+34, 9)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(56, 9, 56+34, 9+22)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 30, 56+34, 33)
}

func main() {
	var path string
	var start uint16 = 0xC000
	loadAddr = 0xC000
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	loadCPU(path, loadAddr, start)
	draw()

	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			switch e.ID {
			case "q", "Q", "<C-c>":
				return
			case "<Space>":
				inst, cycles, err := decoder.FetchAndDecode(gb)
				if err != nil {
					lastErr = err
				} else if err := inst.Execute(gb); err != nil {
					lastErr = err
				} else {
					gb.Tick(cycles)
					lastErr = nil
				}
			case "r", "R":
				loadCPU(path, loadAddr, start)
			}
			draw()
		}
	}
}
