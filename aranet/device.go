package aranet

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

// Device is a handle to a connected Aranet4 sensor, produced by Connect.
//
// The current-readings characteristic is resolved once at connect time and
// never re-resolved; only the underlying transport connection is torn down and
// re-established. A Device is not safe for concurrent use.
type Device struct {
	peripheral ble.Peripheral
	readings   ble.Characteristic
	logger     *logrus.Logger
}

// Address returns the peripheral's transport address.
func (d *Device) Address() string { return d.peripheral.Addr() }

// Name returns the device name observed during discovery.
func (d *Device) Name() string { return d.peripheral.Name() }

// ReadMeasurement reads and decodes the current sensor readings. If the
// transport reports the connection as gone, the device is transparently
// reconnected first.
func (d *Device) ReadMeasurement(ctx context.Context) (Measurement, error) {
	if !d.peripheral.IsConnected() {
		d.logger.WithField("address", d.peripheral.Addr()).Debug("Connection is stale, reconnecting")
		if err := d.Reconnect(ctx); err != nil {
			return Measurement{}, err
		}
	}

	data, err := d.readings.Read()
	if err != nil {
		return Measurement{}, &DeviceError{Kind: DeviceTransport, Err: err}
	}

	m, err := decodeMeasurement(data)
	if err != nil {
		return Measurement{}, &DeviceError{Kind: MalformedPayload, Err: err}
	}
	return m, nil
}

// Reconnect re-establishes the transport connection on the existing
// peripheral. It is a no-op when the device is already connected.
func (d *Device) Reconnect(ctx context.Context) error {
	if err := d.peripheral.Connect(ctx); err != nil {
		return &DeviceError{Kind: DeviceTransport, Err: err}
	}
	return nil
}

// Disconnect tears down the transport connection. The handle stays valid for
// a later Reconnect; characteristic resolution is not repeated.
func (d *Device) Disconnect() error {
	if err := d.peripheral.Disconnect(); err != nil {
		return &DeviceError{Kind: DeviceTransport, Err: err}
	}
	return nil
}
