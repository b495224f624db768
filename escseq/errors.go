// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/errors.go
// Summary: Sentinel errors surfaced by the dispatcher and interceptor.

package escseq

import "errors"

// ErrMalformedSequence is returned when a CSI or OSC body does not match
// the parameter grammar the terminal letter expects (non-digit/non-`;`
// bytes where a number is expected, or trailing bytes after the last
// expected parameter).
var ErrMalformedSequence = errors.New("escseq: malformed escape sequence")

// ErrInvalidEraseArg is returned when an ED (`[nJ`) or EL (`[nK`) parameter
// is present but not one of {absent, 0, 1, 2}.
var ErrInvalidEraseArg = errors.New("escseq: invalid erase argument")
