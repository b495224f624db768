// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: diagnostic/recorder.go
// Summary: A test-only Interpreter that records every callback it
//   receives as a `[NAME:args]` marker interleaved with the plain text
//   it was given, for deterministic end-to-end assertions against the
//   Interceptor. Styled after apps/texelterm/parser/testharness.go's
//   TestHarness, adapted from a screen-state inspector to a call-trace
//   recorder since the interceptor has no screen model of its own.

package diagnostic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arlo-west/ansiterm/escseq"
)

// Recorder implements escseq.Interpreter by appending a textual trace of
// every call to an internal buffer, retrievable with String(). Plain text
// is copied through verbatim; every other callback renders as
// "[NAME:arg,arg]".
type Recorder struct {
	escseq.NopInterpreter

	buf strings.Builder
}

// NewRecorder returns a ready-to-use Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// String returns everything recorded so far.
func (r *Recorder) String() string {
	return r.buf.String()
}

func (r *Recorder) mark(name string, args ...int) {
	r.buf.WriteByte('[')
	r.buf.WriteString(name)
	if len(args) > 0 {
		r.buf.WriteByte(':')
		for i, a := range args {
			if i > 0 {
				r.buf.WriteByte(',')
			}
			r.buf.WriteString(strconv.Itoa(a))
		}
	}
	r.buf.WriteByte(']')
}

func (r *Recorder) WriteText(p []byte) (int, error) {
	r.buf.Write(p)
	return len(p), nil
}

func (r *Recorder) Flush() error { return nil }

func (r *Recorder) CursorUp(n int) error      { r.mark("CUU", n); return nil }
func (r *Recorder) CursorDown(n int) error    { r.mark("CUD", n); return nil }
func (r *Recorder) CursorForward(n int) error { r.mark("CUF", n); return nil }
func (r *Recorder) CursorBack(n int) error    { r.mark("CUB", n); return nil }
func (r *Recorder) CursorPosition(row, col int) error {
	r.mark("CUP", row, col)
	return nil
}
func (r *Recorder) HorizontalVerticalPosition(row, col int) error {
	r.mark("HVP", row, col)
	return nil
}

func (r *Recorder) EraseDisplay(mode escseq.EraseDisplay) error {
	r.mark("ED", int(mode))
	return nil
}
func (r *Recorder) EraseLine(mode escseq.EraseLine) error {
	r.mark("EL", int(mode))
	return nil
}

func (r *Recorder) SGR(params []int) error {
	r.buf.WriteString("[SGR:")
	for i, p := range params {
		if i > 0 {
			r.buf.WriteByte(',')
		}
		r.buf.WriteString(strconv.Itoa(p))
	}
	r.buf.WriteByte(']')
	return nil
}

func (r *Recorder) DeviceStatusReport() error {
	r.mark("DSR")
	return nil
}
func (r *Recorder) SaveCursorPosition() error {
	r.mark("SCP")
	return nil
}
func (r *Recorder) RestoreCursorPosition() error {
	r.mark("RCP")
	return nil
}

func (r *Recorder) OSCText(n int, text string) error {
	r.buf.WriteString(fmt.Sprintf("[OSC%d:%s]", n, text))
	return nil
}

func (r *Recorder) OtherSeq(raw []byte) error {
	r.buf.WriteString(fmt.Sprintf("[OTHER:%q]", raw))
	return nil
}
