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
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "Game Boy rom file to dump the header of",
			},
			&cli.BoolFlag{
				Name:    "verify",
				Aliases: []string{"c"},
				Usage:   "verify the header checksum",
			},
		},
		Name:    "dumper",
		Usage:   "Dump a Game Boy cartridge header",
		Version: "v0.0.1",
		Action: func(c *cli.Context) error {
			romFile := c.String("rom")
			if romFile == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("", 86)
			}
			return dumpHeader(romFile, c.Bool("verify"))
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func dumpHeader(romFile string, verify bool) error {
	data, err := os.ReadFile(romFile)
	if err != nil {
		return err
	}

	header, err := NewHeader(bytes.NewReader(data))
	if err != nil {
		return err
	}

	fmt.Println(header)
	if verify {
		if header.VerifyChecksum(data) {
			fmt.Println("Header checksum: OK")
		} else {
			fmt.Println("Header checksum: MISMATCH")
		}
	}
	return nil
}
