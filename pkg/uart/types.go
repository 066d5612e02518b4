// Package uart provides the serial transport used by the receiver.
package uart

import "io"

// Parity modes.
type Parity int

// Parity values.
const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// Config holds the line parameters of a serial port.
type Config struct {
	BaudRate int
	Parity   Parity
	DataBits int
	StopBits int
}

// Port is one receive port delivering fixed-size frame blocks.
type Port interface {
	io.Closer
	// ReadFrame blocks until buf is completely filled with the next
	// len(buf) bytes from the line.
	ReadFrame(buf []byte) error
	// ResetRx discards any bytes received but not yet read, so the
	// next ReadFrame starts at a frame boundary.
	ResetRx() error
}
