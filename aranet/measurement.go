package aranet

import (
	"fmt"
	"time"
)

// Status is the tri-state CO2 indicator shown on the device display.
type Status uint8

const (
	StatusGreen Status = 1
	StatusAmber Status = 2
	StatusRed   Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusGreen:
		return "GREEN"
	case StatusAmber:
		return "AMBER"
	case StatusRed:
		return "RED"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// statusFromByte converts the wire value to a Status. Only 1, 2 and 3 are
// valid; anything else is a decode error, never a default.
func statusFromByte(b byte) (Status, error) {
	switch b {
	case 1, 2, 3:
		return Status(b), nil
	}
	return 0, fmt.Errorf("invalid status byte %#02x", b)
}

// Measurement is one immutable snapshot read from the device.
type Measurement struct {
	// CO2 concentration in parts per million.
	CO2 uint16
	// Temperature in degrees Celsius.
	Temperature float64
	// Atmospheric pressure in hectopascals.
	Pressure uint16
	// Relative humidity in percent.
	Humidity uint8
	// Remaining battery in percent.
	Battery uint8
	// Status is the CO2 concentration indicator.
	Status Status
	// Interval is the on-device measurement interval.
	Interval time.Duration
	// SinceLastUpdate is the elapsed time since the device last refreshed
	// the reading.
	SinceLastUpdate time.Duration
}
