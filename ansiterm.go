// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ansiterm.go
// Summary: Library surface. Intercept installs the stdio interception
//   harness on Windows; on platforms with a native ANSI-capable console
//   it is a no-op. Ported from
//   _examples/original_source/src/lib.rs's intercept_stdio() entry point.

package ansiterm

import (
	"os"

	"golang.org/x/term"

	"github.com/arlo-west/ansiterm/escseq"
	"github.com/arlo-west/ansiterm/internal/harness"
)

// Re-exported so applications can implement their own Interpreter
// backend without importing the escseq package directly.
type (
	Interpreter    = escseq.Interpreter
	NopInterpreter = escseq.NopInterpreter
	EraseDisplay   = escseq.EraseDisplay
	EraseLine      = escseq.EraseLine
)

const (
	EraseDisplayCursorToBottom = escseq.EraseDisplayCursorToBottom
	EraseDisplayTopToCursor    = escseq.EraseDisplayTopToCursor
	EraseDisplayAll            = escseq.EraseDisplayAll

	EraseLineCursorToEnd   = escseq.EraseLineCursorToEnd
	EraseLineStartToCursor = escseq.EraseLineStartToCursor
	EraseLineAll           = escseq.EraseLineAll
)

// Intercept installs ANSI/VT escape-sequence interception on the
// process's standard streams, if the host needs it. If stdout is not a
// real console (already redirected to a file or pipe by the caller's
// caller), passing bytes straight through is strictly cheaper, and
// Intercept does nothing.
func Intercept() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	return harness.Install()
}

// MustIntercept calls Intercept and panics if it fails, matching
// original_source's historical "panics on setup failure" behavior for
// callers that would rather abort than handle the error.
func MustIntercept() {
	if err := Intercept(); err != nil {
		panic(err)
	}
}
