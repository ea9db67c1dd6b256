// Package ble narrows the platform BLE stack down to the handful of operations
// the sensor client needs: adapter acquisition, scanning, connecting to a
// peripheral, and reading GATT characteristics by UUID.
//
// The production implementation is backed by github.com/go-ble/ble. Tests swap
// the whole stack out by overriding AdapterFactory.
package ble

import (
	"context"
	"errors"
)

// ErrNotConnected is returned by operations that require a live connection.
var ErrNotConnected = errors.New("device not connected")

// Advertisement is the read-only view of a single BLE advertisement.
type Advertisement interface {
	// LocalName returns the advertised device name, or "" if the
	// advertisement carried none.
	LocalName() string
	Addr() string
	// Services returns the advertised service UUIDs in normalized form.
	Services() []string
	RSSI() int
	Connectable() bool
}

// Characteristic is a single readable GATT characteristic on a connected
// peripheral, identified by its normalized 128-bit UUID.
type Characteristic interface {
	UUID() string
	Read() ([]byte, error)
}

// Peripheral is a remote BLE device. Connect and Disconnect may be called
// repeatedly on the same value; characteristic handles obtained through
// Characteristics stay valid across reconnects.
type Peripheral interface {
	Addr() string
	Name() string
	Connect(ctx context.Context) error
	Disconnect() error
	// IsConnected reports connectivity as seen by the transport, never a
	// cached value.
	IsConnected() bool
	Characteristics() []Characteristic
}

// Adapter is a host BLE radio.
type Adapter interface {
	// Scan runs until ctx is cancelled, invoking handler for every
	// advertisement the radio surfaces. A cancelled context is a normal
	// completion, not an error.
	Scan(ctx context.Context, allowDup bool, handler func(Advertisement)) error
	// Peripheral returns a handle for the device at addr. No connection is
	// made until Connect is called on the result.
	Peripheral(addr, name string) Peripheral
}
