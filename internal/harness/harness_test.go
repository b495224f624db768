// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package harness

import (
	"strings"
	"sync"
	"testing"

	"github.com/arlo-west/ansiterm/diagnostic"
)

func TestPumpCopiesThroughInterceptor(t *testing.T) {
	rec := diagnostic.NewRecorder()
	var mu sync.Mutex
	var out strings.Builder

	src := strings.NewReader("Hello, \x1b[31mWorld\x1b[m!")
	p := NewPump("test", &mu, rec, src, &out)
	p.Run()

	want := "Hello, [SGR:31]World[SGR:0]!"
	if got := rec.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
