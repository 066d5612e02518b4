package uart

import (
	"io"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

// DR16Config is the line configuration of the DR16 receiver link.
var DR16Config = Config{
	BaudRate: 100000,
	Parity:   ParityEven,
	DataBits: 8,
	StopBits: 1,
}

// SerialPort is a Port backed by a hardware serial device.
type SerialPort struct {
	port serial.Port
}

// OpenSerial opens and configures the serial device at path.
func OpenSerial(path string, conf Config) (*SerialPort, error) {
	mode := &serial.Mode{
		BaudRate: conf.BaudRate,
		DataBits: conf.DataBits,
		Parity:   parityMode(conf.Parity),
		StopBits: stopBits(conf.StopBits),
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("opened %s at %d baud", path, conf.BaudRate)
	return &SerialPort{port: port}, nil
}

// ReadFrame implements Port.
func (p *SerialPort) ReadFrame(buf []byte) error {
	_, err := io.ReadFull(p.port, buf)
	return err
}

// ResetRx implements Port.
func (p *SerialPort) ResetRx() error {
	return p.port.ResetInputBuffer()
}

// Close implements io.Closer.
func (p *SerialPort) Close() error {
	return p.port.Close()
}

func parityMode(p Parity) serial.Parity {
	switch p {
	case ParityOdd:
		return serial.OddParity
	case ParityEven:
		return serial.EvenParity
	}
	return serial.NoParity
}

func stopBits(n int) serial.StopBits {
	if n == 2 {
		return serial.TwoStopBits
	}
	return serial.OneStopBit
}
