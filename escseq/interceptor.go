// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/interceptor.go
// Summary: Interceptor implements io.Writer, splitting a byte stream into
//   plain text (forwarded to Interpreter.WriteText) and escape sequences
//   (forwarded to the Dispatcher), carrying partial sequences across Write
//   calls. Ported from original_source/src/ansi.rs's AnsiIntercept.

package escseq

const esc = 0x1b

// Interceptor is a streaming ANSI/VT escape sequence parser. It is not
// safe for concurrent use; callers that share one across goroutines must
// serialize their own Write calls (internal/harness does this with a
// mutex around the Interceptor+Interpreter pair).
type Interceptor struct {
	interp Interpreter

	// carry holds a prefix of an escape sequence (NOT including the
	// leading ESC) spanning a previous Write call that ended mid-sequence.
	// pending is true from the moment an ESC byte is seen until the
	// sequence it introduces is fully resolved.
	carry   []byte
	pending bool
}

// NewInterceptor returns an Interceptor that drives interp.
func NewInterceptor(interp Interpreter) *Interceptor {
	return &Interceptor{interp: interp}
}

// Write implements io.Writer. It always reports having consumed the full
// input (len(p), nil) unless an Interpreter callback or the Dispatcher
// itself returns an error, in which case that error is returned and n
// reflects how much of p was forwarded (or, for a malformed sequence, left
// unconsumed) before the failure.
func (ic *Interceptor) Write(p []byte) (int, error) {
	total := 0

	for len(p) > 0 {
		if ic.pending {
			n, err := ic.resume(p)
			total += n
			p = p[n:]
			if err != nil {
				return total, err
			}
			continue
		}

		idx := indexByte(p, esc)
		if idx < 0 {
			if len(p) > 0 {
				if _, err := ic.interp.WriteText(p); err != nil {
					return total, err
				}
			}
			total += len(p)
			p = nil
			continue
		}

		if idx > 0 {
			if _, err := ic.interp.WriteText(p[:idx]); err != nil {
				return total, err
			}
		}
		total += idx
		p = p[idx+1:]
		total++ // account for the consumed ESC byte itself
		ic.pending = true
		ic.carry = ic.carry[:0]
	}

	return total, nil
}

// resume continues an in-flight sequence using newly arrived bytes. It
// returns how many bytes of p it consumed; any bytes of p beyond that are
// left for Write's caller loop to reprocess from scratch (this happens
// when a sequence completes before the end of p, and on overflow, see
// below).
func (ic *Interceptor) resume(p []byte) (int, error) {
	carryLen := len(ic.carry)
	combined := append(append([]byte(nil), ic.carry...), p...)

	n, result := extractSequence(combined)
	switch result {
	case resultIncomplete:
		if len(combined) >= MaxSeqSize {
			// Overflow policy: extractSequence never looks past
			// MaxSeqSize bytes, so a terminator won't be found no matter
			// how much more data arrives. The overrun bytes are never
			// interpreted as a sequence body — they are flushed verbatim
			// as plain text, the ESC and old buffer first then new input up to the
			// limit, so the stream keeps making progress without ever
			// losing bytes or growing an unbounded carry buffer.
			newFromP := MaxSeqSize - carryLen
			ic.pending = false
			ic.carry = ic.carry[:0]
			if _, err := ic.interp.WriteText(append([]byte{esc}, combined[:carryLen]...)); err != nil {
				return 0, err
			}
			if _, err := ic.interp.WriteText(p[:newFromP]); err != nil {
				return 0, err
			}
			return newFromP, nil
		}
		ic.carry = combined
		return len(p), nil

	default: // resultEnd
		body := combined[:n]
		ic.pending = false
		ic.carry = ic.carry[:0]
		consumedFromP := n - carryLen
		if err := dispatch(body, ic.interp); err != nil {
			// A malformed sequence's bytes are not consumed: the caller
			// sees the write fail and may re-attempt with the remainder.
			return 0, err
		}
		return consumedFromP, nil
	}
}

func indexByte(p []byte, b byte) int {
	for i, c := range p {
		if c == b {
			return i
		}
	}
	return -1
}
