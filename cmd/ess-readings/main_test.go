package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/ess-reader/internal/essdevice"
	"github.com/banshee-data/ess-reader/internal/essframe"
	"github.com/banshee-data/ess-reader/internal/serialport"
	"github.com/banshee-data/ess-reader/internal/testutil"
)

func TestRunEndToEnd(t *testing.T) {
	central := essdevice.NewCentral()
	central.Update(0, essdevice.Reading{Temperature: 25.12, Pressure: 1000270, Humidity: 52.04, DewPoint: 8})
	central.Update(1, essdevice.Reading{Temperature: 24.9, Pressure: 1000110, Humidity: 49.8, DewPoint: 7})
	sim := essdevice.NewSimulator(central)
	factory := serialport.NewMockFactory(sim)

	var out bytes.Buffer
	require.NoError(t, run(&out, factory))

	want := "sensor0,temperature=25.12,pressure=1000270,humidity=52.04,dew_point=8\n" +
		"sensor1,temperature=24.90,pressure=1000110,humidity=49.80,dew_point=7\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	call := factory.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, "/dev/ttyACM0", call.Path)
	assert.Equal(t, 115200, call.Opts.BaudRate)
	assert.Equal(t, 2*time.Second, sim.ReadTimeout())
	assert.Equal(t, []string{"ess readings"}, sim.Commands())
	assert.True(t, sim.Closed())
}

func TestRunNoReadings(t *testing.T) {
	sim := essdevice.NewSimulator(essdevice.NewCentral())

	var out bytes.Buffer
	require.NoError(t, run(&out, serialport.NewMockFactory(sim)))
	assert.Empty(t, out.String())
}

func TestRunDeviceUnavailable(t *testing.T) {
	factory := serialport.NewMockFactory(nil)
	factory.Error = errors.New("no such file or directory")

	var out bytes.Buffer
	err := run(&out, factory)
	testutil.AssertError(t, err)
	assert.Empty(t, out.String())
}

func TestRunMissingEndSentinel(t *testing.T) {
	port := serialport.NewTestableSerialPort()
	port.TimeoutWhenEmpty = true
	port.AddReadData([]byte("##1,20,1000,50,5"))

	var out bytes.Buffer
	err := run(&out, serialport.NewMockFactory(port))
	assert.ErrorIs(t, err, essframe.ErrNoEndSentinel)
	assert.True(t, port.Closed)
}

func TestRunDecodeFailurePrintsEarlierRecords(t *testing.T) {
	port := serialport.NewTestableSerialPort()
	port.AddReadData(testutil.Frame("1,20,1000,50,5", "2,\xff,1000,50,5"))

	var out bytes.Buffer
	err := run(&out, serialport.NewMockFactory(port))
	assert.ErrorIs(t, err, essframe.ErrInvalidUTF8)
	assert.Equal(t, "sensor1,temperature=20,pressure=1000,humidity=50,dew_point=5\n", out.String())
}

func TestRunCloseError(t *testing.T) {
	port := serialport.NewTestableSerialPort()
	port.AddReadData(testutil.Frame("1,20,1000,50,5"))
	port.CloseError = errors.New("busy")

	var out bytes.Buffer
	err := run(&out, serialport.NewMockFactory(port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "busy")
	assert.Empty(t, out.String())
}
