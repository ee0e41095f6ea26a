package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBar_PassthroughWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 5)

	b.Advance()
	if buf.Len() != 0 {
		t.Errorf("disabled bar should render nothing, got %q", buf.String())
	}

	n, err := b.Write([]byte("diagnostic\n"))
	if err != nil || n != len("diagnostic\n") {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if buf.String() != "diagnostic\n" {
		t.Errorf("passthrough output = %q", buf.String())
	}

	b.Finish()
	if buf.String() != "diagnostic\n" {
		t.Errorf("Finish on disabled bar wrote: %q", buf.String())
	}
}

func TestBar_RedrawOnAdvance(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 4)
	b.enabled = true

	b.Advance()
	out := buf.String()
	if !strings.Contains(out, "1/4") || !strings.Contains(out, "25%") {
		t.Errorf("render missing counts: %q", out)
	}
	if !strings.HasPrefix(out, "\r\x1b[2K") {
		t.Errorf("redraw should clear the line first: %q", out)
	}
}

func TestBar_WriteKeepsBarIntact(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 2)
	b.enabled = true

	b.Advance()
	buf.Reset()

	if _, err := b.Write([]byte("mid-loop message")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "mid-loop message\n") {
		t.Errorf("message not newline-terminated: %q", out)
	}
	// The bar must be redrawn after the message.
	if !strings.Contains(out[strings.Index(out, "mid-loop message"):], "1/2") {
		t.Errorf("bar not redrawn after message: %q", out)
	}
}

func TestBar_FinishTerminatesLine(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 1)
	b.enabled = true

	b.Advance()
	b.Finish()
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("Finish should end the line: %q", out)
	}
	if !strings.Contains(out, "1/1") || !strings.Contains(out, "100%") {
		t.Errorf("final render wrong: %q", out)
	}

	buf.Reset()
	b.Finish()
	if buf.Len() != 0 {
		t.Errorf("second Finish should be a no-op, wrote %q", buf.String())
	}
}

func TestBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 0)
	b.enabled = true
	b.Finish() // nothing drawn yet, must not panic or write
	if buf.Len() != 0 {
		t.Errorf("Finish with nothing drawn wrote %q", buf.String())
	}
}
