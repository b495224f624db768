// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/extract.go
// Summary: Byte-class state machine that extracts one complete escape
//   sequence from an input buffer positioned just after a leading ESC.
// Notes: Deliberately a hand-written switch over byte classes, not a
//   table or regex — see the design notes in SPEC_FULL.md.

package escseq

// MaxSeqSize bounds how many bytes past the leading ESC the extractor will
// consume before giving up on finding a terminator. This keeps a stream of
// spurious escape bytes from making arbitrarily large chunks of output
// disappear into an unterminated buffer.
const MaxSeqSize = 256

// extractState names the states of the CSI/OSC extraction machine. The
// names and transitions mirror original_source/src/ansi.rs's ExtractState
// exactly.
type extractState int

const (
	stateStart extractState = iota
	stateCsiStart
	stateCsiBody
	stateCsiTail
	stateOsc
	stateOscEsc
	stateEnd
)

// extractResult is the outcome of running the machine over a byte run.
type extractResult int

const (
	// resultEnd means bytes[0:n] (for the n returned alongside) is a
	// complete sequence body, not including the leading ESC.
	resultEnd extractResult = iota
	// resultIncomplete means the input was exhausted, or MaxSeqSize bytes
	// were consumed, before a terminator was found.
	resultIncomplete
)

// extractSequence consumes bytes from buf (which must NOT include the
// leading ESC — the caller has already consumed that) and reports how many
// bytes form the sequence body, or that the body is incomplete. It never
// reads more than MaxSeqSize bytes.
func extractSequence(buf []byte) (n int, result extractResult) {
	state := stateStart
	limit := len(buf)
	if limit > MaxSeqSize {
		limit = MaxSeqSize
	}

	for i := 0; i < limit; i++ {
		b := buf[i]
		var next extractState

		switch state {
		case stateStart:
			switch b {
			case '[':
				next = stateCsiStart
			case ']':
				next = stateOsc
			default:
				// Opaque one-byte sequence: ESC followed by any other byte.
				return i + 1, resultEnd
			}

		case stateCsiStart:
			switch {
			case b >= 0x3c && b <= 0x3f:
				next = stateCsiStart
			case (b >= 0x30 && b <= 0x39) || b == ';':
				next = stateCsiBody
			case b >= 0x20 && b <= 0x2f:
				next = stateCsiTail
			case b >= 0x40 && b <= 0x7e:
				return i + 1, resultEnd
			default:
				// Malformed but terminated; the dispatcher will classify
				// the body as "other".
				return i + 1, resultEnd
			}

		case stateCsiBody:
			switch {
			case (b >= 0x30 && b <= 0x39) || b == ';':
				next = stateCsiBody
			case b >= 0x20 && b <= 0x2f:
				next = stateCsiTail
			case b >= 0x40 && b <= 0x7e:
				return i + 1, resultEnd
			default:
				return i + 1, resultEnd
			}

		case stateCsiTail:
			switch {
			case b >= 0x20 && b <= 0x2f:
				next = stateCsiTail
			case b >= 0x40 && b <= 0x7e:
				return i + 1, resultEnd
			default:
				return i + 1, resultEnd
			}

		case stateOsc:
			switch b {
			case 0x07:
				return i + 1, resultEnd
			case 0x1b:
				next = stateOscEsc
			default:
				next = stateOsc
			}

		case stateOscEsc:
			if b == '\\' {
				return i + 1, resultEnd
			}
			next = stateOsc
		}

		state = next
	}

	return 0, resultIncomplete
}
