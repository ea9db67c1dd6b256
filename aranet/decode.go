package aranet

import (
	"encoding/binary"
	"fmt"
	"time"
)

// measurementSize is the fixed length of the current-readings payload.
const measurementSize = 13

// decodeMeasurement transforms the little-endian current-readings payload into
// a Measurement. The layout is the single source of truth for unit conversion:
//
//	offset 0, u16: CO2 in ppm
//	offset 2, u16: temperature, 1/20 degrees Celsius
//	offset 4, u16: pressure, 1/10 hPa (truncated to whole hPa)
//	offset 6, u8:  relative humidity in percent
//	offset 7, u8:  battery in percent
//	offset 8, u8:  status, 1..3
//	offset 9, u16: measurement interval in seconds
//	offset 11, u16: seconds since the last on-device update
func decodeMeasurement(data []byte) (Measurement, error) {
	if len(data) < measurementSize {
		return Measurement{}, fmt.Errorf("measurement payload is %d bytes, want %d", len(data), measurementSize)
	}

	status, err := statusFromByte(data[8])
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		CO2:             binary.LittleEndian.Uint16(data[0:2]),
		Temperature:     float64(binary.LittleEndian.Uint16(data[2:4])) / 20.0,
		Pressure:        binary.LittleEndian.Uint16(data[4:6]) / 10,
		Humidity:        data[6],
		Battery:         data[7],
		Status:          status,
		Interval:        time.Duration(binary.LittleEndian.Uint16(data[9:11])) * time.Second,
		SinceLastUpdate: time.Duration(binary.LittleEndian.Uint16(data[11:13])) * time.Second,
	}, nil
}
