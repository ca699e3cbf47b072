package timeline

// SeekCoalescer collapses rapid seek requests into the latest value,
// delivered at most once per rendered frame. The host calls Flush on its
// frame tick; a request arriving between flushes simply overwrites the
// pending one.
type SeekCoalescer struct {
	pendingMs int64
	pending   bool
}

// Request replaces any pending seek with ms.
func (c *SeekCoalescer) Request(ms int64) {
	c.pendingMs, c.pending = ms, true
}

// Flush returns the most recent pending seek, if any, and clears it.
func (c *SeekCoalescer) Flush() (int64, bool) {
	if !c.pending {
		return 0, false
	}
	c.pending = false
	return c.pendingMs, true
}

// Pending reports whether a seek is waiting for the next flush.
func (c *SeekCoalescer) Pending() bool { return c.pending }
