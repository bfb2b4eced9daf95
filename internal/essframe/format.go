package essframe

import (
	"io"
	"iter"
	"strings"
)

// Line renders the record in the line format consumed downstream:
//
//	sensor<idx>,temperature=<t>,pressure=<p>,humidity=<h>,dew_point=<d>
//
// Values are copied verbatim with no escaping.
func (r Record) Line() string {
	var b strings.Builder
	b.WriteString("sensor")
	b.WriteString(r.Index)
	b.WriteString(",temperature=")
	b.WriteString(r.Temperature)
	b.WriteString(",pressure=")
	b.WriteString(r.Pressure)
	b.WriteString(",humidity=")
	b.WriteString(r.Humidity)
	b.WriteString(",dew_point=")
	b.WriteString(r.DewPoint)
	return b.String()
}

// Write prints one newline-terminated line per record and returns how many
// were written. It stops at the first parse or write error.
func Write(w io.Writer, records iter.Seq2[Record, error]) (int, error) {
	n := 0
	for rec, err := range records {
		if err != nil {
			return n, err
		}
		if _, err := io.WriteString(w, rec.Line()+"\n"); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
