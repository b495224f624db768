// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wincon/syscalls.go
// Summary: The two console APIs golang.org/x/sys/windows doesn't wrap
//   (FillConsoleOutputAttribute/CharacterW), hand-wrapped the way
//   buildkite-agent's logger/init_windows.go and version_dump_windows.go
//   reach for golang.org/x/sys/windows as the teacher pack's idiom for
//   Win32 console calls, following the same NewLazySystemDLL pattern
//   x/sys/windows's own generated zsyscall files use internally.

//go:build windows

package wincon

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                        = windows.NewLazySystemDLL("kernel32.dll")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
)

// fillConsoleOutputAttribute sets the text attribute of length cells
// starting at origin to attr, returning the number of cells written.
func fillConsoleOutputAttribute(h windows.Handle, attr uint16, length uint32, origin windows.Coord) (uint32, error) {
	var written uint32
	r, _, err := procFillConsoleOutputAttribute.Call(
		uintptr(h),
		uintptr(attr),
		uintptr(length),
		coordToUintptr(origin),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return 0, err
	}
	return written, nil
}

// fillConsoleOutputCharacterW writes ch into length cells starting at
// origin, returning the number of cells written.
func fillConsoleOutputCharacterW(h windows.Handle, ch rune, length uint32, origin windows.Coord) (uint32, error) {
	var written uint32
	r, _, err := procFillConsoleOutputCharacterW.Call(
		uintptr(h),
		uintptr(ch),
		uintptr(length),
		coordToUintptr(origin),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return 0, err
	}
	return written, nil
}

// coordToUintptr packs a COORD the way the Win32 calling convention
// expects it: X in the low 16 bits, Y in the high 16 bits of one machine
// word, passed by value.
func coordToUintptr(c windows.Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}
