package essdevice

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"time"
)

// ReadingsCommand is the shell command that makes the central print a report.
const ReadingsCommand = "ess readings"

// Simulator is a serial port attached to a Central's shell. Complete lines
// written to it are run as commands; the replies are queued for reading.
type Simulator struct {
	central *Central

	mu          sync.Mutex
	pending     []byte
	out         bytes.Buffer
	commands    []string
	closed      bool
	readTimeout time.Duration
}

// NewSimulator returns a port that answers for central.
func NewSimulator(central *Central) *Simulator {
	return &Simulator{central: central}
}

// Write buffers input and runs every complete line.
func (s *Simulator) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errors.New("serial port closed")
	}

	s.pending = append(s.pending, p...)
	for {
		i := bytes.IndexByte(s.pending, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSpace(string(s.pending[:i]))
		s.pending = s.pending[i+1:]
		s.run(line)
	}
	return len(p), nil
}

// Read returns queued output. With nothing queued it returns 0, nil, which is
// how a real port reports an expired read timeout.
func (s *Simulator) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errors.New("serial port closed")
	}
	if s.out.Len() == 0 {
		return 0, nil
	}
	return s.out.Read(p)
}

// Close closes the port.
func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// SetReadTimeout records the timeout; reads never block.
func (s *Simulator) SetReadTimeout(timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readTimeout = timeout
	return nil
}

// ReadTimeout returns the last timeout set on the port.
func (s *Simulator) ReadTimeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readTimeout
}

// Commands returns the command lines received so far.
func (s *Simulator) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.commands...)
}

// Closed reports whether Close was called.
func (s *Simulator) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *Simulator) run(line string) {
	if line == "" {
		return
	}
	s.commands = append(s.commands, line)
	if line == ReadingsCommand {
		s.out.WriteString(s.central.Report())
		s.out.WriteString("\r\n")
	}
}
