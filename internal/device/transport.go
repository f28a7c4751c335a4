// Package device talks to the fingerprint sensor over its serial link and
// runs the background reader that frames, classifies, and dispatches its
// messages.
package device

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.bug.st/serial"
)

// Transport is the byte-level boundary to the sensor. Read is
// semi-blocking: it returns within the configured timeout, and a zero-byte
// read means "no data yet", not an error.
type Transport interface {
	IsOpen() bool
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// ReadTimeout bounds each serial read so the reader loop can re-check
// IsOpen between reads.
const ReadTimeout = 100 * time.Millisecond

// SerialTransport is a Transport over a real serial port.
type SerialTransport struct {
	port   serial.Port
	closed atomic.Bool
}

// Compile-time check that SerialTransport implements Transport.
var _ Transport = (*SerialTransport)(nil)

// OpenSerial opens the named port. Open failure is fatal to the connection
// attempt only; the caller reports it and stays disconnected.
func OpenSerial(portName string, baudRate int) (*SerialTransport, error) {
	mode := &serial.Mode{BaudRate: baudRate}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", portName, err)
	}
	return &SerialTransport{port: port}, nil
}

// IsOpen reports whether the port is still usable.
func (t *SerialTransport) IsOpen() bool {
	return !t.closed.Load()
}

// Read reads available bytes, returning 0 after the read timeout when the
// device is quiet.
func (t *SerialTransport) Read(p []byte) (int, error) {
	return t.port.Read(p)
}

// Write sends bytes to the device.
func (t *SerialTransport) Write(p []byte) (int, error) {
	return t.port.Write(p)
}

// Close closes the port; the reader loop exits on the next IsOpen check.
func (t *SerialTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	return t.port.Close()
}

// clearCommand asks the sensor to purge its stored templates.
const clearCommand = "CLEARFP\n"

// SendClear writes the template-purge command. Failure is reported to the
// caller, not fatal.
func SendClear(t Transport) error {
	if !t.IsOpen() {
		return fmt.Errorf("send clear: transport closed")
	}
	if _, err := t.Write([]byte(clearCommand)); err != nil {
		return fmt.Errorf("send clear: %w", err)
	}
	return nil
}
