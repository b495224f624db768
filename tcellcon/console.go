// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tcellcon/console.go
// Summary: A reference escseq.Interpreter backend built on
//   gdamore/tcell/v2, exercised by this package's own tests on platforms
//   without a native Windows console. cmd/hello and cmd/clear do not use
//   it.
//   Styled after texel/driver_tcell.go's thin adapter-over-tcell.Screen
//   shape, but implementing the Interpreter contract rather than a
//   ScreenDriver one.

package tcellcon

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arlo-west/ansiterm/escseq"
)

// Console is an escseq.Interpreter that renders onto a tcell.Screen.
// It keeps its own cursor and style state, since tcell has no notion of
// an ANSI text cursor or SGR stack of its own.
type Console struct {
	escseq.NopInterpreter

	screen tcell.Screen
	x, y   int
	style  tcell.Style

	scpX, scpY int
	title      string
}

// New wraps screen, which must already be initialized (screen.Init
// called) by the caller.
func New(screen tcell.Screen) *Console {
	return &Console{screen: screen, style: tcell.StyleDefault}
}

func (c *Console) size() (w, h int) { return c.screen.Size() }

func (c *Console) clampCursor() {
	w, h := c.size()
	if c.x < 0 {
		c.x = 0
	}
	if c.x > w-1 {
		c.x = w - 1
	}
	if c.y < 0 {
		c.y = 0
	}
	if c.y > h-1 {
		c.y = h - 1
	}
}

func (c *Console) WriteText(p []byte) (int, error) {
	w, _ := c.size()
	for _, r := range string(p) {
		switch r {
		case '\n':
			c.y++
			c.x = 0
		case '\r':
			c.x = 0
		default:
			c.screen.SetContent(c.x, c.y, r, nil, c.style)
			c.x++
			if c.x >= w {
				c.x = 0
				c.y++
			}
		}
	}
	c.clampCursor()
	return len(p), nil
}

func (c *Console) Flush() error {
	c.screen.Show()
	return nil
}

func (c *Console) CursorUp(n int) error      { c.y -= n; c.clampCursor(); return nil }
func (c *Console) CursorDown(n int) error    { c.y += n; c.clampCursor(); return nil }
func (c *Console) CursorForward(n int) error { c.x += n; c.clampCursor(); return nil }
func (c *Console) CursorBack(n int) error    { c.x -= n; c.clampCursor(); return nil }

func (c *Console) CursorPosition(row, col int) error {
	c.x, c.y = col-1, row-1
	c.clampCursor()
	return nil
}

func (c *Console) HorizontalVerticalPosition(row, col int) error {
	return c.CursorPosition(row, col)
}

func (c *Console) EraseDisplay(mode escseq.EraseDisplay) error {
	w, h := c.size()
	startY, endY := 0, h-1
	switch mode {
	case escseq.EraseDisplayTopToCursor:
		endY = c.y
	case escseq.EraseDisplayCursorToBottom:
		startY = c.y
	case escseq.EraseDisplayAll:
		// full range already set
	}
	for y := startY; y <= endY; y++ {
		for x := 0; x < w; x++ {
			c.screen.SetContent(x, y, ' ', nil, c.style)
		}
	}
	return nil
}

func (c *Console) EraseLine(mode escseq.EraseLine) error {
	w, _ := c.size()
	startX, endX := 0, w-1
	switch mode {
	case escseq.EraseLineStartToCursor:
		endX = c.x
	case escseq.EraseLineCursorToEnd:
		startX = c.x
	case escseq.EraseLineAll:
		// full range already set
	}
	for x := startX; x <= endX; x++ {
		c.screen.SetContent(x, c.y, ' ', nil, c.style)
	}
	return nil
}

func (c *Console) SGR(params []int) error {
	for _, n := range params {
		switch {
		case n == 0:
			c.style = tcell.StyleDefault
		case n == 1:
			c.style = c.style.Bold(true)
		case n == 22:
			c.style = c.style.Bold(false)
		case n >= 30 && n <= 37:
			c.style = c.style.Foreground(ansiColor(n - 30))
		case n == 39:
			c.style = c.style.Foreground(tcell.ColorDefault)
		case n >= 40 && n <= 47:
			c.style = c.style.Background(ansiColor(n - 40))
		case n == 49:
			c.style = c.style.Background(tcell.ColorDefault)
		case n >= 90 && n <= 97:
			c.style = c.style.Foreground(ansiColor(n - 90)).Bold(true)
		case n >= 100 && n <= 107:
			c.style = c.style.Background(ansiColor(n - 100))
		}
	}
	return nil
}

var ansiColors = [8]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

func ansiColor(n int) tcell.Color {
	if n < 0 || n > 7 {
		return tcell.ColorDefault
	}
	return ansiColors[n]
}

func (c *Console) DeviceStatusReport() error {
	// The reference backend has no stdin to answer into; Cursor lets
	// tests assert cursor state directly instead.
	return nil
}

func (c *Console) SaveCursorPosition() error {
	c.scpX, c.scpY = c.x, c.y
	return nil
}

func (c *Console) RestoreCursorPosition() error {
	c.x, c.y = c.scpX, c.scpY
	c.clampCursor()
	return nil
}

func (c *Console) OSCText(n int, text string) error {
	// tcell.Screen has no window-title concept (it's a terminal-cell
	// abstraction, not a windowing one), so OSC 0/2 just records the
	// title for Title() to report rather than calling through to screen.
	if n == 0 || n == 2 {
		c.title = text
	}
	return nil
}

// Title returns the most recent OSC 0/2 title text, for tests.
func (c *Console) Title() string {
	return c.title
}

// Cursor returns the Console's current logical cursor position, 1-based
// to match the ANSI coordinate space tests assert against.
func (c *Console) Cursor() (row, col int) {
	return c.y + 1, c.x + 1
}

// Style returns the current SGR-derived style, for tests that want to
// assert on color state without re-deriving it from raw SGR params.
func (c *Console) Style() tcell.Style {
	return c.style
}
