// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tcellcon

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/arlo-west/ansiterm/escseq"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestConsoleWriteTextAndCursor(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	defer screen.Fini()

	c := New(screen)
	ic := escseq.NewInterceptor(c)
	if _, err := ic.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}
	if row, col := c.Cursor(); row != 1 || col != 3 {
		t.Fatalf("cursor = %d,%d, want 1,3", row, col)
	}

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != 'h' {
		t.Fatalf("cell(0,0) = %q, want 'h'", mainc)
	}
}

func TestConsoleCursorPositionClamps(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	defer screen.Fini()

	c := New(screen)
	if err := c.CursorPosition(100, 100); err != nil {
		t.Fatal(err)
	}
	if row, col := c.Cursor(); row != 5 || col != 10 {
		t.Fatalf("cursor = %d,%d, want clamped to 5,10", row, col)
	}
}

func TestConsoleSaveRestoreCursor(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	defer screen.Fini()

	c := New(screen)
	c.CursorPosition(2, 3)
	if err := c.SaveCursorPosition(); err != nil {
		t.Fatal(err)
	}
	c.CursorPosition(4, 4)
	if err := c.RestoreCursorPosition(); err != nil {
		t.Fatal(err)
	}
	if row, col := c.Cursor(); row != 2 || col != 3 {
		t.Fatalf("cursor = %d,%d, want restored 2,3", row, col)
	}
}

func TestConsoleSGRForegroundColor(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	defer screen.Fini()

	c := New(screen)
	if err := c.SGR([]int{31}); err != nil {
		t.Fatal(err)
	}
	fg, _, _ := c.Style().Decompose()
	if fg != tcell.ColorMaroon {
		t.Fatalf("fg = %v, want ColorMaroon", fg)
	}
}

func TestConsoleOSCTitle(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	defer screen.Fini()

	c := New(screen)
	if err := c.OSCText(2, "my title"); err != nil {
		t.Fatal(err)
	}
	if c.Title() != "my title" {
		t.Fatalf("title = %q", c.Title())
	}
}

func TestConsoleEraseLine(t *testing.T) {
	screen := newTestScreen(t, 5, 3)
	defer screen.Fini()

	c := New(screen)
	ic := escseq.NewInterceptor(c)
	if _, err := ic.Write([]byte("abcde")); err != nil {
		t.Fatal(err)
	}
	if _, err := ic.Write([]byte("\x1b[1;1H\x1b[2K")); err != nil {
		t.Fatal(err)
	}
	mainc, _, _, _ := screen.GetContent(2, 0)
	if mainc != ' ' {
		t.Fatalf("cell(2,0) = %q, want erased to space", mainc)
	}
}
