// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/harness/harness.go
// Summary: Platform-independent pump plumbing shared by the Windows
//   harness and its non-Windows no-op counterpart. Extends
//   _examples/original_source/src/win32/intercept.rs's single
//   stdout-only pump to all three standard streams, per SPEC_FULL.md
//   §4.6.

package harness

import (
	"io"
	"log"
	"sync"

	"github.com/arlo-west/ansiterm/escseq"
)

// Pump copies from src through an Interceptor wired to interp, to dst.
// The Interceptor and its Interpreter are guarded by mu; Pumps that share
// one Interceptor (stdout and stderr on Windows) must share mu too. The
// stdin passthrough is not a Pump, and DSR replies written back into stdin
// are serialized by a separate lock, not by mu.
type Pump struct {
	Label string
	mu    *sync.Mutex
	ic    *escseq.Interceptor
	dst   io.Writer
	src   io.Reader
}

// NewPump builds a Pump that reads src, feeds it through a new Interceptor
// driving interp, and writes interp's own output to dst (interp.WriteText
// is expected to write to dst itself; dst is stored but Run does not use
// it, and log lines name the stream by label). Use this when the pump has no
// state to share with any other pump.
func NewPump(label string, mu *sync.Mutex, interp escseq.Interpreter, src io.Reader, dst io.Writer) *Pump {
	return NewSharedPump(label, mu, escseq.NewInterceptor(interp), src, dst)
}

// NewSharedPump builds a Pump around an Interceptor owned by the caller.
// Pass the same ic and mu to two Pumps to have them drive one Interceptor
// and one backend from two source streams — as spec.md §4.6/§5 require for
// the stdout and stderr pumps, which share a single console backend (one
// cursor-save register, one carry-over buffer) and so must also share the
// mutex that serializes writes into it.
func NewSharedPump(label string, mu *sync.Mutex, ic *escseq.Interceptor, src io.Reader, dst io.Writer) *Pump {
	return &Pump{
		Label: label,
		mu:    mu,
		ic:    ic,
		src:   src,
		dst:   dst,
	}
}

// Run copies src into the Interceptor until EOF or a read/write error.
// A read error is logged and the pump exits; per spec.md §7, one pump
// dying must not bring down the others or the host process, so Run never
// panics and the caller must not treat its return as fatal.
func (p *Pump) Run() {
	buf := make([]byte, 4096)
	for {
		n, err := p.src.Read(buf)
		if n > 0 {
			p.mu.Lock()
			_, werr := p.ic.Write(buf[:n])
			p.mu.Unlock()
			if werr != nil {
				log.Printf("ansiterm: %s pump: error while writing intercepted output: %v", p.Label, werr)
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("ansiterm: %s pump: error while reading: %v", p.Label, err)
			}
			return
		}
	}
}
