// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/clear/main.go
// Summary: Demonstrates the erase-display/erase-line variants, selected
//   by the first argument. Direct Go port of
//   _examples/original_source/examples/clear.rs.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/arlo-west/ansiterm"
)

func main() {
	ansiterm.MustIntercept()

	fmt.Print("abcdef\x1b[3D")

	mode := "all"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "down":
		fmt.Print("\x1b[0J")
	case "up":
		fmt.Print("\x1b[1J")
	case "all":
		fmt.Print("\x1b[2J")
	case "right":
		fmt.Print("\x1b[0K")
	case "left":
		fmt.Print("\x1b[1K")
	case "line":
		fmt.Print("\x1b[2K")
	default:
		fmt.Println("\x1b[3DUsage: clear [up|down|all|left|right|line]")
		flush()
		return
	}

	fmt.Print("\x1b[3C")
	flush()
}

func flush() {
	os.Stdout.Sync()
	time.Sleep(10 * time.Millisecond)
}
