// Package config holds the fixed parameters used to reach the ESS central.
// They are compiled in; there are no files, flags or environment variables.
package config

import (
	"time"

	"github.com/banshee-data/ess-reader/internal/serialport"
)

const (
	// DevicePath is the USB CDC ACM console of the central.
	DevicePath = "/dev/ttyACM0"
	// BaudRate of the central's shell console.
	BaudRate = 115200
	// ReadTimeout bounds each read of the reply.
	ReadTimeout = 2 * time.Second
	// Command asks the central's shell for the latest readings.
	Command = "ess readings\r\n"
	// MaxResponseBytes bounds the reply; 0 reads until newline or timeout.
	MaxResponseBytes = 0
)

// DeviceConfig groups the connection parameters for one run.
type DeviceConfig struct {
	Path             string
	BaudRate         int
	DataBits         int
	StopBits         int
	Parity           string
	ReadTimeout      time.Duration
	Command          string
	MaxResponseBytes int
}

// Device returns the compiled-in connection parameters.
func Device() DeviceConfig {
	return DeviceConfig{
		Path:             DevicePath,
		BaudRate:         BaudRate,
		DataBits:         8,
		StopBits:         1,
		Parity:           "N",
		ReadTimeout:      ReadTimeout,
		Command:          Command,
		MaxResponseBytes: MaxResponseBytes,
	}
}

// PortOptions converts the serial framing into transport options.
func (c DeviceConfig) PortOptions() serialport.PortOptions {
	return serialport.PortOptions{
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
		StopBits: c.StopBits,
		Parity:   c.Parity,
	}
}
