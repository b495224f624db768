// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/harness/windows.go
// Summary: Installs the pipe-and-pump interception harness on the three
//   standard streams. Ported from
//   _examples/original_source/src/win32/intercept.rs's try_intercept_stdio
//   (stdout-only) and its mlw submodule (CreatePipe/GetStdHandle/
//   SetStdHandle), extended to stdin and stderr per SPEC_FULL.md §4.6.

//go:build windows

package harness

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/arlo-west/ansiterm/escseq"
	"github.com/arlo-west/ansiterm/wincon"
)

// Install swaps stdout and stderr for pipes whose read ends are pumped
// through a wincon.Console and rendered onto the original console, and
// swaps stdin for a pipe whose write end receives both real keyboard
// input (passed through unmodified, per spec.md §1 Non-goals: no cooked-
// mode input processing) and synthesized DSR replies. It returns once
// all three pumps are running in their own goroutines.
func Install() error {
	origOut, err := getStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return fmt.Errorf("ansiterm: no stdout handle: %w", err)
	}
	origErr, err := getStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return fmt.Errorf("ansiterm: no stderr handle: %w", err)
	}
	origIn, err := getStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return fmt.Errorf("ansiterm: no stdin handle: %w", err)
	}

	outR, outW, err := createPipe()
	if err != nil {
		return fmt.Errorf("ansiterm: create stdout pipe: %w", err)
	}
	errR, errW, err := createPipe()
	if err != nil {
		return fmt.Errorf("ansiterm: create stderr pipe: %w", err)
	}
	inR, inW, err := createPipe()
	if err != nil {
		return fmt.Errorf("ansiterm: create stdin pipe: %w", err)
	}

	// stdinMu guards the shared stdin-pipe writer: both the passthrough
	// stdin pump (real keyboard bytes) and any Interceptor's
	// DeviceStatusReport callback (synthesized cursor-position replies)
	// write into it, and Win32 pipe writes aren't required to be safe for
	// concurrent callers.
	stdinMu := &sync.Mutex{}
	sharedStdin := &lockedWriter{mu: stdinMu, w: inW}

	// stdout and stderr share one console backend and one Interceptor:
	// the Windows console has a single screen buffer and a single cursor
	// regardless of which standard handle writes to it, so a save/restore
	// or carry-over split across the two streams must land in the same
	// state. One mutex serializes both pumps' writes into that shared
	// state, per spec.md §4.6/§5.
	consoleMu := &sync.Mutex{}
	console := wincon.New(sharedStdin, origOut, windows.Handle(origOut.Fd()))
	ic := escseq.NewInterceptor(console)

	if err := setStdHandle(windows.STD_OUTPUT_HANDLE, outW); err != nil {
		return fmt.Errorf("ansiterm: redirect stdout: %w", err)
	}
	if err := setStdHandle(windows.STD_ERROR_HANDLE, errW); err != nil {
		return fmt.Errorf("ansiterm: redirect stderr: %w", err)
	}
	if err := setStdHandle(windows.STD_INPUT_HANDLE, inR); err != nil {
		return fmt.Errorf("ansiterm: redirect stdin: %w", err)
	}

	go NewSharedPump("stdout", consoleMu, ic, outR, origOut).Run()
	go NewSharedPump("stderr", consoleMu, ic, errR, origErr).Run()
	go passthrough("stdin", origIn, sharedStdin)

	return nil
}

// passthrough copies src to dst unmodified, logging (but not panicking)
// on read/write failure — used for stdin, which this module never parses
// escape sequences out of.
func passthrough(label string, src *os.File, dst *lockedWriter) {
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				log.Printf("ansiterm: %s pump: error while writing: %v", label, werr)
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("ansiterm: %s pump: error while reading: %v", label, err)
			}
			return
		}
	}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *os.File
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

func getStdHandle(which uint32) (*os.File, error) {
	h, err := windows.GetStdHandle(which)
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(h), stdHandleName(which)), nil
}

func setStdHandle(which uint32, f *os.File) error {
	return windows.SetStdHandle(which, windows.Handle(f.Fd()))
}

func createPipe() (r, w *os.File, err error) {
	var rh, wh windows.Handle
	if err := windows.CreatePipe(&rh, &wh, nil, 0); err != nil {
		return nil, nil, err
	}
	return os.NewFile(uintptr(rh), "|0"), os.NewFile(uintptr(wh), "|1"), nil
}

func stdHandleName(which uint32) string {
	switch which {
	case windows.STD_INPUT_HANDLE:
		return "stdin"
	case windows.STD_OUTPUT_HANDLE:
		return "stdout"
	case windows.STD_ERROR_HANDLE:
		return "stderr"
	default:
		return "std"
	}
}
