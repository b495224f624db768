// Copyright © 2026 ansiterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: escseq/pty_integration_test.go
// Summary: Drives the Interceptor against a real PTY running a short shell
//   script, so the adversarial chunking comes from the kernel's own pipe
//   buffering rather than hand-picked byte slices. Grounded on
//   apps/texelterm/testutil/interactive_capture.go's use of creack/pty.

//go:build !windows

package escseq_test

import (
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/arlo-west/ansiterm/diagnostic"
	"github.com/arlo-west/ansiterm/escseq"
)

func TestInterceptorAgainstRealPTY(t *testing.T) {
	shPath, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no sh on PATH, skipping PTY integration test")
	}

	script := `printf '\033[31mred\033[0m '
printf '\033[4;12H'
printf '\033]2;pty title\007'
`
	cmd := exec.Command(shPath, "-c", script)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("start pty: %v", err)
	}
	defer ptmx.Close()

	rec := diagnostic.NewRecorder()
	ic := escseq.NewInterceptor(rec)

	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				if _, werr := ic.Write(buf[:n]); werr != nil {
					done <- werr
					return
				}
			}
			if err != nil {
				if err == io.EOF {
					done <- nil
				} else {
					done <- err
				}
				return
			}
		}
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("pty read/intercept loop failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pty output")
	}
	cmd.Wait()

	got := rec.String()
	for _, want := range []string{"[SGR:31]", "red", "[SGR:0]", "[CUP:4,12]", "[OSC2:pty title]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("recorded output %q missing %q", got, want)
		}
	}
}
