package timeline

import "testing"

func TestSeekCoalescer_LatestValueWins(t *testing.T) {
	var c SeekCoalescer
	c.Request(100)
	c.Request(200)
	c.Request(300)

	ms, ok := c.Flush()
	if !ok || ms != 300 {
		t.Fatalf("Flush = %d, %v, want 300, true", ms, ok)
	}
}

func TestSeekCoalescer_AtMostOncePerFlush(t *testing.T) {
	var c SeekCoalescer
	c.Request(100)

	if _, ok := c.Flush(); !ok {
		t.Fatalf("first Flush returned nothing")
	}
	if ms, ok := c.Flush(); ok {
		t.Fatalf("second Flush = %d, want nothing pending", ms)
	}
}

func TestSeekCoalescer_EmptyFlush(t *testing.T) {
	var c SeekCoalescer
	if ms, ok := c.Flush(); ok {
		t.Fatalf("Flush on empty coalescer = %d, want none", ms)
	}
	if c.Pending() {
		t.Fatalf("Pending = true on empty coalescer")
	}
}

func TestSeekCoalescer_NewRequestAfterFlush(t *testing.T) {
	var c SeekCoalescer
	c.Request(100)
	c.Flush()
	c.Request(500)

	ms, ok := c.Flush()
	if !ok || ms != 500 {
		t.Fatalf("Flush = %d, %v, want 500, true", ms, ok)
	}
}
