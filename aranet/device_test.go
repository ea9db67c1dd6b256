package aranet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

func TestReadMeasurement(t *testing.T) {
	readings := readingsCharacteristic(goldenPayload)
	peripheral := &fakePeripheral{connected: true, chars: []ble.Characteristic{readings}}
	device := newTestDevice(peripheral, readings)

	m, err := device.ReadMeasurement(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint16(1000), m.CO2)
	assert.Equal(t, StatusGreen, m.Status)
	assert.Equal(t, 0, peripheral.connects, "no reconnect while the connection is healthy")
}

func TestReadMeasurementHealsStaleConnection(t *testing.T) {
	readings := readingsCharacteristic(goldenPayload)
	peripheral := &fakePeripheral{connected: false, chars: []ble.Characteristic{readings}}
	device := newTestDevice(peripheral, readings)

	m, err := device.ReadMeasurement(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint16(1000), m.CO2)
	assert.Equal(t, 1, peripheral.connects, "a stale connection must be transparently re-established")
	assert.True(t, peripheral.IsConnected())
}

func TestReadMeasurementReconnectFailure(t *testing.T) {
	cause := errors.New("link loss")
	readings := readingsCharacteristic(goldenPayload)
	peripheral := &fakePeripheral{connected: false, connectErr: cause}
	device := newTestDevice(peripheral, readings)

	_, err := device.ReadMeasurement(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, DeviceTransport, devErr.Kind)
}

func TestReadMeasurementMalformedPayload(t *testing.T) {
	for _, data := range [][]byte{nil, {0xE8}, goldenPayload[:12]} {
		readings := readingsCharacteristic(data)
		peripheral := &fakePeripheral{connected: true}
		device := newTestDevice(peripheral, readings)

		_, err := device.ReadMeasurement(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	}
}

func TestReadMeasurementInvalidStatusIsDecodeError(t *testing.T) {
	buf := append([]byte(nil), goldenPayload...)
	buf[8] = 4
	readings := readingsCharacteristic(buf)
	device := newTestDevice(&fakePeripheral{connected: true}, readings)

	_, err := device.ReadMeasurement(context.Background())

	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestReadMeasurementTransportError(t *testing.T) {
	cause := errors.New("att timeout")
	readings := &fakeCharacteristic{uuid: ble.NormalizeUUID(CurrentReadingsUUID), err: cause}
	device := newTestDevice(&fakePeripheral{connected: true}, readings)

	_, err := device.ReadMeasurement(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestDisconnectKeepsHandleReusable(t *testing.T) {
	readings := readingsCharacteristic(goldenPayload)
	peripheral := &fakePeripheral{connected: true, chars: []ble.Characteristic{readings}}
	device := newTestDevice(peripheral, readings)

	require.NoError(t, device.Disconnect())
	assert.False(t, peripheral.IsConnected())

	// The same handle reads again after an explicit disconnect
	m, err := device.ReadMeasurement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(1000), m.CO2)
	assert.Equal(t, 1, peripheral.connects)
}

func TestReconnectIsIdempotent(t *testing.T) {
	peripheral := &fakePeripheral{connected: true}
	device := newTestDevice(peripheral, readingsCharacteristic(goldenPayload))

	require.NoError(t, device.Reconnect(context.Background()))
	require.NoError(t, device.Reconnect(context.Background()))
	assert.Equal(t, 0, peripheral.connects, "reconnect while connected must be a no-op")
}
