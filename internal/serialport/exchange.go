package serialport

import (
	"errors"
	"fmt"
	"io"
)

var ErrWriteFailed = fmt.Errorf("failed to write to serial port")

// Exchange writes command verbatim and returns the reply read up to and
// including the first newline. maxBytes bounds the reply; 0 means unbounded.
func Exchange(port io.ReadWriter, command string, maxBytes int) ([]byte, error) {
	n, err := port.Write([]byte(command))
	if err != nil {
		return nil, fmt.Errorf("write command %q: %w", command, err)
	}
	if n != len(command) {
		return nil, ErrWriteFailed
	}

	reply, err := ReadUntil(port, '\n', maxBytes)
	if err != nil {
		return reply, fmt.Errorf("read reply to %q: %w", command, err)
	}
	return reply, nil
}

// ReadUntil reads one byte at a time until delim has been read, maxBytes bytes
// have been read (0 means no bound), the reader hits io.EOF, or a read returns
// no data because the serial read timeout expired. The bytes read so far are
// always returned.
func ReadUntil(r io.Reader, delim byte, maxBytes int) ([]byte, error) {
	var out []byte
	b := make([]byte, 1)
	for maxBytes <= 0 || len(out) < maxBytes {
		n, err := r.Read(b)
		if n == 1 {
			out = append(out, b[0])
			if b[0] == delim {
				return out, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
	return out, nil
}
