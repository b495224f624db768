// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package escseq

import (
	"fmt"
	"strings"
	"testing"
)

// recorder is a minimal in-package Interpreter for dispatch unit tests; the
// full diagnostic.Recorder (in the sibling diagnostic package) is used by
// the end-to-end Interceptor tests, which live outside this package to
// avoid an import cycle.
type recorder struct {
	NopInterpreter
	buf strings.Builder
}

func (r *recorder) WriteText(p []byte) (int, error) { r.buf.Write(p); return len(p), nil }
func (r *recorder) Flush() error                     { return nil }
func (r *recorder) CursorUp(n int) error             { fmt.Fprintf(&r.buf, "[CUU:%d]", n); return nil }
func (r *recorder) CursorDown(n int) error           { fmt.Fprintf(&r.buf, "[CUD:%d]", n); return nil }
func (r *recorder) CursorForward(n int) error        { fmt.Fprintf(&r.buf, "[CUF:%d]", n); return nil }
func (r *recorder) CursorPosition(row, col int) error {
	fmt.Fprintf(&r.buf, "[CUP:%d,%d]", row, col)
	return nil
}
func (r *recorder) EraseDisplay(mode EraseDisplay) error {
	fmt.Fprintf(&r.buf, "[ED:%d]", mode)
	return nil
}
func (r *recorder) SGR(params []int) error {
	fmt.Fprintf(&r.buf, "[SGR:%v]", params)
	return nil
}
func (r *recorder) DeviceStatusReport() error {
	r.buf.WriteString("[DSR]")
	return nil
}
func (r *recorder) OSCText(n int, text string) error {
	fmt.Fprintf(&r.buf, "[OSC%d:%s]", n, text)
	return nil
}
func (r *recorder) OtherSeq(raw []byte) error {
	fmt.Fprintf(&r.buf, "[OTHER:%q]", raw)
	return nil
}

func TestDispatchCursorMovement(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[5A"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[CUU:5]" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchCUPDefaults(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[H"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[CUP:1,1]" {
		t.Fatalf("got %q, want [CUP:1,1]", got)
	}
}

func TestDispatchHVPDefaultsToCursorPosition(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[4;12f"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[CUP:4,12]" {
		t.Fatalf("got %q, want HVP to delegate to CursorPosition", got)
	}
}

type hvpRecorder struct {
	recorder
}

func (h *hvpRecorder) HorizontalVerticalPosition(row, col int) error {
	fmt.Fprintf(&h.buf, "[HVP:%d,%d]", row, col)
	return nil
}

func TestDispatchHVPOverride(t *testing.T) {
	r := &hvpRecorder{}
	if err := dispatch([]byte("[4;12f"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[HVP:4,12]" {
		t.Fatalf("got %q, want override to be used", got)
	}
}

func TestDispatchEraseDisplay(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[2J"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[ED:2]" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchEraseDisplayInvalidArg(t *testing.T) {
	r := &recorder{}
	err := dispatch([]byte("[9J"), r)
	if err != ErrInvalidEraseArg {
		t.Fatalf("err = %v, want ErrInvalidEraseArg", err)
	}
}

func TestDispatchSGR(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[31m"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[SGR:[31]]" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchSGRNoParamsDefaultsToReset(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[m"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[SGR:[0]]" {
		t.Fatalf("got %q, want bare CSI m to reset", got)
	}
}

func TestDispatchDSR(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[6n"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[DSR]" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchOSCTitle(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("]2;my title\x07"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != "[OSC2:my title]" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchUnknownCSIGoesToOtherSeq(t *testing.T) {
	r := &recorder{}
	if err := dispatch([]byte("[5Z"), r); err != nil {
		t.Fatal(err)
	}
	if got := r.buf.String(); got != `[OTHER:"[5Z"]` {
		t.Fatalf("got %q", got)
	}
}

func TestDispatchMalformedCSI(t *testing.T) {
	r := &recorder{}
	err := dispatch([]byte("[x5A"), r)
	if err != ErrMalformedSequence {
		t.Fatalf("err = %v, want ErrMalformedSequence", err)
	}
}
