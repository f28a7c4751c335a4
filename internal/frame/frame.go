// Package frame reassembles the sensor's raw byte stream into complete
// newline-terminated messages.
package frame

import (
	"bytes"
	"strings"
)

// Framer accumulates raw bytes and splits out complete lines. A partial
// trailing line is retained across Feed calls until its terminator arrives.
// The framer does not interpret message content.
type Framer struct {
	buf bytes.Buffer
}

// New creates an empty framer.
func New() *Framer {
	return &Framer{}
}

// Feed appends p to the accumulation buffer and returns every complete
// message it now contains, in arrival order. Messages are trimmed of the
// terminator and surrounding whitespace; blank lines are discarded.
func (f *Framer) Feed(p []byte) []string {
	f.buf.Write(p)

	var msgs []string
	for {
		data := f.buf.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			return msgs
		}
		line := strings.TrimSpace(string(data[:i]))
		f.buf.Next(i + 1)
		if line != "" {
			msgs = append(msgs, line)
		}
	}
}

// Pending returns the number of buffered bytes not yet part of a complete
// message.
func (f *Framer) Pending() int {
	return f.buf.Len()
}
