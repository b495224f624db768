// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/hello/main.go
// Summary: Demonstrates cursor movement, SGR colors, a DSR round-trip
//   and a save/restore-cursor progress bar. Direct Go port of
//   _examples/original_source/examples/hello.rs.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arlo-west/ansiterm"
)

func main() {
	ansiterm.MustIntercept()

	fmt.Print("\x1b]2;Hello, World! ☺ ℌ\U0001d52c\U0001d52c\U0001d52b\U0001d52e\U0001d536 \U0001d512\U0001d52b\U0001d522\U0001d520\U0001d52c\U0001d521\U0001d530!\x07")
	fmt.Println("Secret text!")
	fmt.Print("\x1b[A\x1b[1B\x1b[2A\x1b[B")
	fmt.Println("\x1b[0;43;91mH\x1b[22mello\x1b[2D\x1b[C\x1b[1D\x1b[2C\x1b[39m, \x1b[92mW\x1b[22morld\x1b[94m!\x1b[m")
	fmt.Println("\x1b[0;31;1mBlarp! Blarp!\x1b[m: error text!")
	fmt.Print("\x1b[6n")
	flush()

	if r, c, ok := readCPR(os.Stdin); ok {
		fmt.Printf("\x1b[32;1mCPR\x1b[m: (\x1b[1m%d\x1b[m, \x1b[1m%d\x1b[m)\n", r, c)
	} else {
		fmt.Println("\x1b[32;1mCPR\x1b[m: \x1b[31;1mFAILED\x1b[m")
	}

	for i := 0; i < 100; i++ {
		chs := (i + 1) / 2
		bar := strings.Repeat("#", chs) + strings.Repeat(" ", 50-chs)
		fmt.Printf("\x1b[s\x1b[2;3H[%s]\x1b[u", bar)
		flush()
		time.Sleep(20 * time.Millisecond)
	}
}

func flush() {
	os.Stdout.Sync()
}

// readCPR parses a cursor-position report (ESC [ row ; col R) off r,
// mirroring hello.rs's read_cpr — including its quirk of defaulting a
// missing field to 1 rather than failing the whole parse.
func readCPR(r io.Reader) (row, col int, ok bool) {
	br := bufio.NewReader(r)
	if b, err := br.ReadByte(); err != nil || b != 0x1b {
		return 0, 0, false
	}
	if b, err := br.ReadByte(); err != nil || b != '[' {
		return 0, 0, false
	}

	rowBytes := readDigits(br)
	readByte(br) // consume the ';' separator (or whatever follows)
	colBytes := readDigits(br)

	row = atoiOr(rowBytes, 1)
	col = atoiOr(colBytes, 1)
	return row, col, true
}

func readDigits(br *bufio.Reader) []byte {
	var out []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			br.UnreadByte()
			break
		}
		out = append(out, b)
	}
	return out
}

func readByte(br *bufio.Reader) {
	br.ReadByte()
}

func atoiOr(b []byte, def int) int {
	if len(b) == 0 {
		return def
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return def
	}
	return n
}
