package device

import (
	"context"
	"log/slog"

	"github.com/alfredjeanlab/rollcall/internal/frame"
	"github.com/alfredjeanlab/rollcall/internal/protocol"
)

// Handler receives classified events in strict arrival order.
type Handler func(ctx context.Context, ev protocol.Event)

// Reader pulls bytes from the transport, frames them into messages,
// classifies each against the capture phase, and dispatches the resulting
// events. One Reader per device stream; it owns the framer and phase
// machine, so no locking is needed on either.
type Reader struct {
	transport Transport
	framer    *frame.Framer
	machine   *protocol.Machine
	handler   Handler
	logger    *slog.Logger
}

// NewReader creates a reader dispatching to handler.
func NewReader(t Transport, handler Handler, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		transport: t,
		framer:    frame.New(),
		machine:   protocol.NewMachine(),
		handler:   handler,
		logger:    logger,
	}
}

// Run loops until the transport closes or ctx is cancelled. Read errors on
// a single pass are logged and the loop continues; a closed transport ends
// it. Messages are never reordered or coalesced.
func (r *Reader) Run(ctx context.Context) {
	buf := make([]byte, 1024)

	for r.transport.IsOpen() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := r.transport.Read(buf)
		if err != nil {
			if !r.transport.IsOpen() {
				return
			}
			r.logger.Warn("device read failed", "err", err)
			continue
		}
		if n <= 0 {
			// Timeout with no data; poll IsOpen and go again.
			continue
		}

		for _, line := range r.framer.Feed(buf[:n]) {
			r.logger.Debug("device message", "line", line)
			ev := r.machine.Next(line)
			if ev.Kind == protocol.EventUnrecognized {
				continue
			}
			r.handler(ctx, ev)
		}
	}
}

// Phase exposes the current capture phase for status displays.
func (r *Reader) Phase() protocol.Phase {
	return r.machine.Phase()
}
