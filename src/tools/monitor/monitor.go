// Package monitor watches a serial byte stream for the firmware's
// power-on banner. Serial reads arrive in arbitrary chunks, so the
// match has to work across chunk boundaries.
package monitor

import "bytes"

// Watcher finds one occurrence of a banner in a stream of chunks.
type Watcher struct {
	want     []byte
	tail     []byte // unmatched stream tail, shorter than want
	consumed int    // total bytes fed so far
	matchAt  int    // stream offset of the banner's first byte
	seen     bool
}

func NewWatcher(banner string) *Watcher {
	return &Watcher{want: []byte(banner), matchAt: -1}
}

// Feed consumes the next chunk and reports whether the banner has now
// been seen in full. Once it returns true it stays true.
func (w *Watcher) Feed(p []byte) bool {
	if w.seen {
		w.consumed += len(p)
		return true
	}
	if len(w.want) == 0 {
		w.seen = true
		w.matchAt = w.consumed
		w.consumed += len(p)
		return true
	}
	buf := make([]byte, 0, len(w.tail)+len(p))
	buf = append(buf, w.tail...)
	buf = append(buf, p...)
	if idx := bytes.Index(buf, w.want); idx >= 0 {
		// buf[0] sits len(tail) bytes before this chunk in the stream.
		w.matchAt = w.consumed - len(w.tail) + idx
		w.consumed += len(p)
		w.seen = true
		w.tail = nil
		return true
	}
	w.consumed += len(p)
	// Keep only what could still be a banner prefix next time.
	if keep := len(w.want) - 1; len(buf) > keep {
		buf = buf[len(buf)-keep:]
	}
	w.tail = buf
	return false
}

// Seen reports whether the banner has been observed.
func (w *Watcher) Seen() bool {
	return w.seen
}

// MatchOffset returns the stream offset of the banner's first byte, or
// -1 while the banner has not been seen.
func (w *Watcher) MatchOffset() int {
	return w.matchAt
}
