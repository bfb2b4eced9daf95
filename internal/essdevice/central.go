// Package essdevice simulates the ESS central: a BLE central that collects
// Environmental Sensing readings from its peripherals and prints them on its
// shell console in response to "ess readings".
package essdevice

import (
	"fmt"
	"strings"
	"sync"
)

// SlotCount is the number of peripherals the central tracks.
const SlotCount = 2

// Received records which characteristics have been notified since the last
// report.
type Received uint8

const (
	ReceivedTemperature Received = 1 << iota
	ReceivedHumidity
	ReceivedPressure
	ReceivedDewPoint

	ReceivedNone Received = 0
	ReceivedAll           = ReceivedTemperature | ReceivedHumidity | ReceivedPressure | ReceivedDewPoint
)

// Reading is one peripheral's latest values.
type Reading struct {
	Temperature float64 // °C
	Pressure    float64 // Pa
	Humidity    float64 // %
	DewPoint    int8    // °C
}

type slot struct {
	active   bool
	reading  Reading
	received Received
}

// Central holds the state of every slot. It is safe for concurrent use.
type Central struct {
	mu    sync.Mutex
	slots [SlotCount]slot
}

// NewCentral returns a central with no active peripherals.
func NewCentral() *Central {
	return &Central{}
}

// SetActive marks a slot as connected and subscribed (or not).
func (c *Central) SetActive(i int, active bool) error {
	return c.with(i, func(s *slot) {
		s.active = active
		if !active {
			s.received = ReceivedNone
		}
	})
}

// Update activates slot i and stores a complete set of readings.
func (c *Central) Update(i int, r Reading) error {
	return c.with(i, func(s *slot) {
		s.active = true
		s.reading = r
		s.received = ReceivedAll
	})
}

// SetTemperature records a temperature notification.
func (c *Central) SetTemperature(i int, v float64) error {
	return c.with(i, func(s *slot) {
		s.reading.Temperature = v
		s.received |= ReceivedTemperature
	})
}

// SetPressure records a pressure notification.
func (c *Central) SetPressure(i int, v float64) error {
	return c.with(i, func(s *slot) {
		s.reading.Pressure = v
		s.received |= ReceivedPressure
	})
}

// SetHumidity records a humidity notification.
func (c *Central) SetHumidity(i int, v float64) error {
	return c.with(i, func(s *slot) {
		s.reading.Humidity = v
		s.received |= ReceivedHumidity
	})
}

// SetDewPoint records a dew point notification.
func (c *Central) SetDewPoint(i int, v int8) error {
	return c.with(i, func(s *slot) {
		s.reading.DewPoint = v
		s.received |= ReceivedDewPoint
	})
}

// Report renders the readings frame the central prints, without the line
// terminator. Only active slots with every characteristic received are
// included, and those slots must be notified again before the next report
// includes them.
func (c *Central) Report() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	for i := range c.slots {
		s := &c.slots[i]
		if !s.active || s.received != ReceivedAll {
			continue
		}
		fmt.Fprintf(&b, "%d,%.2f,%.0f,%.2f,%d,", i,
			s.reading.Temperature, s.reading.Pressure, s.reading.Humidity, s.reading.DewPoint)
		s.received = ReceivedNone
	}

	return "##" + strings.TrimSuffix(b.String(), ",") + "^^"
}

func (c *Central) with(i int, f func(*slot)) error {
	if i < 0 || i >= SlotCount {
		return fmt.Errorf("slot %d out of range [0,%d)", i, SlotCount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f(&c.slots[i])
	return nil
}
