// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/dispatch.go
// Summary: Classifies an extracted sequence body and calls the matching
//   Interpreter method for its terminal letter.

package escseq

// dispatch parses body (the sequence bytes after the leading ESC, so the
// first byte is `[`, `]`, or any other single byte) and calls the
// matching Interpreter method. It returns ErrMalformedSequence or
// ErrInvalidEraseArg if the parameter section doesn't match the grammar
// the terminal letter expects; any other error is whatever the
// Interpreter callback returned.
func dispatch(body []byte, interp Interpreter) error {
	if len(body) == 0 {
		return ErrMalformedSequence
	}

	switch body[0] {
	case '[':
		return dispatchCSI(body[1:], interp)
	case ']':
		return dispatchOSC(body[1:], interp)
	default:
		return interp.OtherSeq(body)
	}
}

func dispatchCSI(tail []byte, interp Interpreter) error {
	if len(tail) == 0 {
		return ErrMalformedSequence
	}
	term := tail[len(tail)-1]
	args := tail[:len(tail)-1]

	switch term {
	case 'A':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		return interp.CursorUp(orDefault(n, 1))
	case 'B':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		return interp.CursorDown(orDefault(n, 1))
	case 'C':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		return interp.CursorForward(orDefault(n, 1))
	case 'D':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		return interp.CursorBack(orDefault(n, 1))
	case 'H':
		r, c, ok := parse2n(args)
		if !ok {
			return ErrMalformedSequence
		}
		return interp.CursorPosition(orDefault(r, 1), orDefault(c, 1))
	case 'f':
		r, c, ok := parse2n(args)
		if !ok {
			return ErrMalformedSequence
		}
		row, col := orDefault(r, 1), orDefault(c, 1)
		if hv, ok := interp.(HVPOverrider); ok {
			return hv.HorizontalVerticalPosition(row, col)
		}
		return interp.CursorPosition(row, col)
	case 'J':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		mode, ok := eraseDisplayFromParam(n)
		if !ok {
			return ErrInvalidEraseArg
		}
		return interp.EraseDisplay(mode)
	case 'K':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		mode, ok := eraseLineFromParam(n)
		if !ok {
			return ErrInvalidEraseArg
		}
		return interp.EraseLine(mode)
	case 'm':
		ns, ok := parseNs(args)
		if !ok {
			return ErrMalformedSequence
		}
		if len(ns) == 0 {
			ns = []int{0}
		}
		return interp.SGR(ns)
	case 'n':
		n, ok := parse1n(args)
		if !ok {
			return ErrMalformedSequence
		}
		if orDefault(n, 0) == 6 {
			return interp.DeviceStatusReport()
		}
		return interp.OtherSeq(append([]byte{'['}, append(args, term)...))
	case 's':
		if !parse0n(args) {
			return ErrMalformedSequence
		}
		return interp.SaveCursorPosition()
	case 'u':
		if !parse0n(args) {
			return ErrMalformedSequence
		}
		return interp.RestoreCursorPosition()
	default:
		return interp.OtherSeq(append([]byte{'['}, tail...))
	}
}

func dispatchOSC(tail []byte, interp Interpreter) error {
	rest, n, ok := parseNum(tail)
	if !ok || n == nil {
		return ErrMalformedSequence
	}

	if len(rest) == 0 || rest[0] != ';' {
		return interp.OtherSeq(append([]byte{']'}, tail...))
	}
	rest = rest[1:]

	if len(rest) == 0 {
		return ErrMalformedSequence
	}
	var dropEnd int
	switch rest[len(rest)-1] {
	case 0x07:
		dropEnd = 1
	case '\\':
		// OSC text is terminated by ST (ESC \); the extractor includes
		// both bytes in the body, so both are dropped.
		if len(rest) < 2 || rest[len(rest)-2] != 0x1b {
			return ErrMalformedSequence
		}
		dropEnd = 2
	default:
		return ErrMalformedSequence
	}

	text := string(rest[:len(rest)-dropEnd])
	return interp.OSCText(*n, text)
}

func orDefault(n *int, def int) int {
	if n == nil {
		return def
	}
	return *n
}
