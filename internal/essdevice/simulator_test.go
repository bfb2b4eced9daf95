package essdevice

import (
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/ess-reader/internal/serialport"
)

var _ serialport.TimeoutSerialPorter = (*Simulator)(nil)

func TestSimulator_AnswersReadingsCommand(t *testing.T) {
	c := NewCentral()
	c.Update(0, Reading{Temperature: 22.5, Pressure: 101325, Humidity: 45, DewPoint: 10})
	sim := NewSimulator(c)

	reply, err := serialport.Exchange(sim, "ess readings\r\n", 0)
	if err != nil {
		t.Fatalf("Exchange error = %v", err)
	}
	if want := "##0,22.50,101325,45.00,10^^\r\n"; string(reply) != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestSimulator_CommandSplitAcrossWrites(t *testing.T) {
	sim := NewSimulator(NewCentral())
	io.WriteString(sim, "ess rea")
	io.WriteString(sim, "dings\r\nhelp\n")

	if diff := cmp.Diff([]string{"ess readings", "help"}, sim.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	got, err := serialport.ReadUntil(sim, '\n', 0)
	if err != nil {
		t.Fatalf("ReadUntil error = %v", err)
	}
	if string(got) != "##^^\r\n" {
		t.Errorf("reply = %q", got)
	}
}

func TestSimulator_UnknownCommandIsSilent(t *testing.T) {
	sim := NewSimulator(NewCentral())
	io.WriteString(sim, "kernel uptime\r\n")

	n, err := sim.Read(make([]byte, 8))
	if n != 0 || err != nil {
		t.Errorf("Read() = %d, %v; want 0, nil", n, err)
	}
}

func TestSimulator_Close(t *testing.T) {
	sim := NewSimulator(NewCentral())
	sim.SetReadTimeout(2 * time.Second)
	if sim.ReadTimeout() != 2*time.Second {
		t.Errorf("ReadTimeout() = %v", sim.ReadTimeout())
	}

	sim.Close()
	if !sim.Closed() {
		t.Error("Closed() = false after Close")
	}
	if _, err := sim.Write([]byte("ess readings\n")); err == nil {
		t.Error("Write after Close should fail")
	}
	if _, err := sim.Read(make([]byte, 1)); err == nil {
		t.Error("Read after Close should fail")
	}
}
