package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// RealFactory opens hardware ports through go.bug.st/serial.
type RealFactory struct{}

// Open implements Factory.
func (RealFactory) Open(path string, opts PortOptions) (SerialPorter, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	return serial.Open(path, mode)
}

// Open opens the port at path through f and applies the read timeout when the
// port supports one. A non-positive timeout leaves reads blocking.
func Open(f Factory, path string, opts PortOptions, timeout time.Duration) (SerialPorter, error) {
	port, err := f.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if timeout > 0 {
		if tp, ok := port.(TimeoutSerialPorter); ok {
			if err := tp.SetReadTimeout(timeout); err != nil {
				port.Close()
				return nil, fmt.Errorf("set read timeout on %s: %w", path, err)
			}
		}
	}
	return port, nil
}
