// Package essframe parses the sentinel-delimited ESS readings frame printed by
// the central device and formats the records it carries.
//
// A frame looks like
//
//	##0,25.12,1000270,52.04,8,1,24.90,1000110,49.80,7^^
//
// where every five comma-separated fields describe one sensor.
package essframe

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"
)

var (
	// StartSentinel opens the payload region of a frame.
	StartSentinel = []byte("##")
	// EndSentinel closes the payload region of a frame.
	EndSentinel = []byte("^^")
)

// FieldsPerRecord is the number of payload tokens that make up one Record.
const FieldsPerRecord = 5

var (
	ErrNoEndSentinel = errors.New("end sentinel not found")
	ErrInvalidUTF8   = errors.New("token is not valid UTF-8")
)

// Record is one sensor's readings, kept as the verbatim text the device sent.
type Record struct {
	Index       string
	Temperature string
	Pressure    string
	Humidity    string
	DewPoint    string
}

// Fields returns the record values in frame order.
func (r Record) Fields() []string {
	return []string{r.Index, r.Temperature, r.Pressure, r.Humidity, r.DewPoint}
}

// Payload returns the bytes strictly between the start and end sentinels.
//
// When the start sentinel is missing its index is taken as -1, so the payload
// begins at byte 1 and the end sentinel is searched from there. Only a missing
// end sentinel is an error.
func Payload(buf []byte) ([]byte, error) {
	start := bytes.Index(buf, StartSentinel)
	from := start + len(StartSentinel)
	if from > len(buf) {
		return nil, fmt.Errorf("payload start %d beyond frame of %d bytes: %w", from, len(buf), ErrNoEndSentinel)
	}

	end := bytes.Index(buf[from:], EndSentinel)
	if end < 0 {
		return nil, fmt.Errorf("search from byte %d: %w", from, ErrNoEndSentinel)
	}
	return buf[from : from+end], nil
}

// Tokens splits the frame payload on commas. An empty payload yields a single
// empty token.
func Tokens(buf []byte) ([][]byte, error) {
	payload, err := Payload(buf)
	if err != nil {
		return nil, err
	}
	return bytes.Split(payload, []byte(",")), nil
}

// Parse returns the records carried by buf as a lazy, single-pass sequence.
//
// Trailing tokens that do not fill a whole record are dropped. A token that is
// not valid UTF-8 ends the sequence with an error wrapping ErrInvalidUTF8;
// records before it have already been yielded.
func Parse(buf []byte) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		tokens, err := Tokens(buf)
		if err != nil {
			yield(Record{}, err)
			return
		}

		count := len(tokens) / FieldsPerRecord
		for i := 0; i < count; i++ {
			group := tokens[i*FieldsPerRecord : (i+1)*FieldsPerRecord]
			fields := make([]string, FieldsPerRecord)
			for j, tok := range group {
				if !utf8.Valid(tok) {
					yield(Record{}, fmt.Errorf("record %d field %d (%q): %w", i, j, tok, ErrInvalidUTF8))
					return
				}
				fields[j] = string(tok)
			}

			rec := Record{
				Index:       fields[0],
				Temperature: fields[1],
				Pressure:    fields[2],
				Humidity:    fields[3],
				DewPoint:    fields[4],
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Records collects Parse into a slice, stopping at the first error. The
// records decoded before the error are returned alongside it.
func Records(buf []byte) ([]Record, error) {
	var out []Record
	for rec, err := range Parse(buf) {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
