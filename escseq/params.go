// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/params.go
// Summary: Parameter-section parsing for CSI bodies. Ported from
//   original_source/src/ansi.rs's parse_0n/1n/2n/ns/num family.

package escseq

// parseNum consumes a decimal run from the front of bytes, stopping at the
// first non-digit byte. It returns the remaining bytes, the parsed value
// (nil if the run was empty — "default", distinct from an explicit 0), and
// ok, which is false when a non-digit, non-`;` byte broke the run
// (malformed).
func parseNum(bytes []byte) (rest []byte, value *int, ok bool) {
	v := 0
	hasDigits := false
	i := 0
	for i < len(bytes) {
		b := bytes[i]
		if b >= '0' && b <= '9' {
			v = v*10 + int(b-'0')
			hasDigits = true
			i++
			continue
		}
		if b == ';' {
			break
		}
		return nil, nil, false
	}
	if hasDigits {
		return bytes[i:], &v, true
	}
	return bytes[i:], nil, true
}

// parse0n requires an empty parameter section.
func parse0n(bytes []byte) bool {
	return len(bytes) == 0
}

// parse1n parses a single optional parameter with no trailing bytes.
func parse1n(bytes []byte) (value *int, ok bool) {
	rest, n, ok := parseNum(bytes)
	if !ok || len(rest) != 0 {
		return nil, false
	}
	return n, true
}

// parse2n parses up to two `;`-separated optional parameters with no
// trailing bytes.
func parse2n(bytes []byte) (first, second *int, ok bool) {
	rest, n1, ok := parseNum(bytes)
	if !ok {
		return nil, nil, false
	}
	if len(rest) == 0 {
		return n1, nil, true
	}
	if rest[0] != ';' {
		return nil, nil, false
	}
	rest, n2, ok := parseNum(rest[1:])
	if !ok || len(rest) != 0 {
		return nil, nil, false
	}
	return n1, n2, true
}

// parseNs parses any number of `;`-separated optional parameters. Absent
// values (two consecutive `;`, or a leading/trailing `;`) are simply
// omitted from the result, per spec.
func parseNs(bytes []byte) (values []int, ok bool) {
	for len(bytes) > 0 {
		rest, n, parsedOK := parseNum(bytes)
		if !parsedOK {
			return nil, false
		}
		if len(rest) > 0 {
			if rest[0] != ';' {
				return nil, false
			}
			bytes = rest[1:]
		} else {
			bytes = rest
		}
		if n != nil {
			values = append(values, *n)
		}
	}
	return values, true
}
