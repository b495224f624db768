// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wincon/console.go
// Summary: An escseq.Interpreter backend that drives the real Windows
//   console: cursor motion, erase, SGR color, save/restore cursor, DSR,
//   and OSC 0/2 title-setting, via golang.org/x/sys/windows. Ported from
//   original_source/src/win32/mod.rs's ConsoleInterpreter.

//go:build windows

package wincon

import (
	"fmt"
	"io"

	"golang.org/x/sys/windows"

	"github.com/arlo-west/ansiterm/escseq"
)

const (
	foregroundBlue      = uint16(windows.FOREGROUND_BLUE)
	foregroundGreen     = uint16(windows.FOREGROUND_GREEN)
	foregroundRed       = uint16(windows.FOREGROUND_RED)
	foregroundIntensity = uint16(windows.FOREGROUND_INTENSITY)
	foregroundWhite     = foregroundRed | foregroundGreen | foregroundBlue

	backgroundBlue      = uint16(windows.BACKGROUND_BLUE)
	backgroundGreen     = uint16(windows.BACKGROUND_GREEN)
	backgroundRed       = uint16(windows.BACKGROUND_RED)
	backgroundIntensity = uint16(windows.BACKGROUND_INTENSITY)
	backgroundWhite     = backgroundRed | backgroundGreen | backgroundBlue

	colorAll = foregroundWhite | foregroundIntensity | backgroundWhite | backgroundIntensity
)

// Console is an escseq.Interpreter that renders onto a real Windows
// console screen buffer. Stdin is used only to write synthesized DSR
// replies back into the process's own input stream.
type Console struct {
	escseq.NopInterpreter

	stdin  io.Writer
	stdout io.Writer
	handle windows.Handle

	scp windows.Coord // cursor position saved by SaveCursorPosition
}

// New returns a Console that renders onto handle (normally the process's
// own STD_OUTPUT_HANDLE) and writes DSR replies to stdin.
func New(stdin, stdout io.Writer, handle windows.Handle) *Console {
	return &Console{stdin: stdin, stdout: stdout, handle: handle}
}

func (c *Console) WriteText(p []byte) (int, error) {
	return c.stdout.Write(p)
}

func (c *Console) Flush() error {
	if f, ok := c.stdout.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (c *Console) bufferInfo() (*windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.handle, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Console) mutTextAttrs(f func(attrs uint16) uint16) error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	return windows.SetConsoleTextAttribute(c.handle, f(info.Attributes))
}

func clampI16(v, lo, hi int32) int16 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int16(v)
}

func (c *Console) CursorUp(n int) error {
	if n == 0 {
		return nil
	}
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	pos := info.CursorPosition
	pos.Y = clampI16(int32(pos.Y)-int32(n), 0, int32(pos.Y))
	return windows.SetConsoleCursorPosition(c.handle, pos)
}

func (c *Console) CursorDown(n int) error {
	if n == 0 {
		return nil
	}
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	pos := info.CursorPosition
	pos.Y = clampI16(int32(pos.Y)+int32(n), int32(pos.Y), int32(info.Size.Y)-1)
	return windows.SetConsoleCursorPosition(c.handle, pos)
}

func (c *Console) CursorForward(n int) error {
	if n == 0 {
		return nil
	}
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	pos := info.CursorPosition
	pos.X = clampI16(int32(pos.X)+int32(n), int32(pos.X), int32(info.Size.X)-1)
	return windows.SetConsoleCursorPosition(c.handle, pos)
}

func (c *Console) CursorBack(n int) error {
	if n == 0 {
		return nil
	}
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	pos := info.CursorPosition
	pos.X = clampI16(int32(pos.X)-int32(n), 0, int32(pos.X))
	return windows.SetConsoleCursorPosition(c.handle, pos)
}

// CursorPosition implements CUP (and, via HorizontalVerticalPosition,
// HVP). Per DESIGN.md's open-question decision it clamps to the visible
// window, then offsets by the window's origin, exactly as
// original_source's cup_seq does — Windows' screen buffer is much larger
// than the visible window, so an absolute buffer coordinate would let the
// cursor wander off past what the user can see.
func (c *Console) CursorPosition(row, col int) error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}

	x := clampI16(int32(col)-1, 0, int32(info.Window.Right-info.Window.Left))
	y := clampI16(int32(row)-1, 0, int32(info.Window.Bottom-info.Window.Top))

	abs := windows.Coord{
		X: x + info.Window.Left,
		Y: y + info.Window.Top,
	}
	return windows.SetConsoleCursorPosition(c.handle, abs)
}

func (c *Console) HorizontalVerticalPosition(row, col int) error {
	return c.CursorPosition(row, col)
}

func (c *Console) EraseDisplay(mode escseq.EraseDisplay) error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}

	var start windows.Coord
	var lines int32
	switch mode {
	case escseq.EraseDisplayTopToCursor:
		start = windows.Coord{X: 0, Y: info.Window.Top}
		lines = int32(info.CursorPosition.Y-start.Y) + 1
	case escseq.EraseDisplayCursorToBottom:
		start = windows.Coord{X: 0, Y: info.CursorPosition.Y}
		lines = int32(info.Window.Bottom-start.Y) + 1
	case escseq.EraseDisplayAll:
		start = windows.Coord{X: 0, Y: info.Window.Top}
		lines = int32(info.Window.Bottom-start.Y) + 1
	}
	if lines < 0 {
		lines = 0
	}
	length := uint32(lines) * uint32(info.Size.X)
	return c.fill(info.Attributes, length, start)
}

func (c *Console) EraseLine(mode escseq.EraseLine) error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}

	var start windows.Coord
	var cols int32
	switch mode {
	case escseq.EraseLineStartToCursor:
		start = windows.Coord{X: 0, Y: info.CursorPosition.Y}
		cols = int32(info.CursorPosition.X) + 1
	case escseq.EraseLineCursorToEnd:
		start = windows.Coord{X: info.CursorPosition.X, Y: info.CursorPosition.Y}
		cols = int32(info.Size.X) - int32(info.CursorPosition.X)
	case escseq.EraseLineAll:
		start = windows.Coord{X: 0, Y: info.CursorPosition.Y}
		cols = int32(info.Size.X)
	}
	if cols < 0 {
		cols = 0
	}
	return c.fill(info.Attributes, uint32(cols), start)
}

func (c *Console) fill(attrs uint16, length uint32, start windows.Coord) error {
	if _, err := fillConsoleOutputAttribute(c.handle, attrs, length, start); err != nil {
		return err
	}
	_, err := fillConsoleOutputCharacterW(c.handle, ' ', length, start)
	return err
}

// sgrColorBits maps an ANSI color digit (0-7, already offset from its
// base 30/40/90/100) onto the native console's bit order. ANSI orders
// R-G-B low to high; the console orders B-G-R, so bit 0 and bit 2 swap.
func sgrColorBits(n uint16) uint16 {
	return ((n & 1) << 2) | (n & 2) | ((n & 4) >> 2)
}

func sgrColorToFG(n int) (uint16, bool) {
	switch {
	case n >= 30 && n <= 37:
		return sgrColorBits(uint16(n - 30)), true
	case n >= 90 && n <= 97:
		return sgrColorBits(uint16(n-90)) | foregroundIntensity, true
	case n == 39:
		return 0, true
	default:
		return 0, false
	}
}

func sgrColorToBG(n int) (uint16, bool) {
	switch {
	case n >= 40 && n <= 47:
		return sgrColorBits(uint16(n-40)) << 4, true
	case n >= 100 && n <= 107:
		return (sgrColorBits(uint16(n-100)) << 4) | backgroundIntensity, true
	case n == 49:
		return 0, true
	default:
		return 0, false
	}
}

func (c *Console) SGR(params []int) error {
	if err := c.Flush(); err != nil {
		return err
	}
	for _, n := range params {
		var err error
		switch {
		case n == 0:
			err = c.mutTextAttrs(func(a uint16) uint16 { return (a &^ colorAll) | foregroundWhite })
		case n == 1:
			err = c.mutTextAttrs(func(a uint16) uint16 { return a | foregroundIntensity })
		case n == 22:
			err = c.mutTextAttrs(func(a uint16) uint16 { return a &^ foregroundIntensity })
		case (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
			if fg, ok := sgrColorToFG(n); ok {
				err = c.mutTextAttrs(func(a uint16) uint16 { return (a &^ foregroundWhite) | fg })
			}
		case n == 39:
			err = c.mutTextAttrs(func(a uint16) uint16 { return (a &^ foregroundIntensity) | foregroundWhite })
		case (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
			if bg, ok := sgrColorToBG(n); ok {
				err = c.mutTextAttrs(func(a uint16) uint16 { return (a &^ backgroundWhite) | bg })
			}
		case n == 49:
			err = c.mutTextAttrs(func(a uint16) uint16 { return a &^ (backgroundWhite | backgroundIntensity) })
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) DeviceStatusReport() error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	relX := int32(info.CursorPosition.X-info.Window.Left) + 1
	relY := int32(info.CursorPosition.Y-info.Window.Top) + 1
	_, err = fmt.Fprintf(c.stdin, "\x1b[%d;%dR", relY, relX)
	return err
}

func (c *Console) SaveCursorPosition() error {
	info, err := c.bufferInfo()
	if err != nil {
		return err
	}
	c.scp = info.CursorPosition
	return nil
}

func (c *Console) RestoreCursorPosition() error {
	return windows.SetConsoleCursorPosition(c.handle, c.scp)
}

func (c *Console) OSCText(n int, text string) error {
	switch n {
	case 0, 2:
		return windows.SetConsoleTitle(text)
	default:
		return nil
	}
}

func (c *Console) OtherSeq(raw []byte) error {
	_, err := fmt.Fprintf(c.stdout, "[UNK:% x]", raw)
	return err
}
