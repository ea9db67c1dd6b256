package aranet

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

// Test doubles for the transport interfaces. They are swapped in through
// ble.AdapterFactory, the same seam the production stack is created through.

type fakeAdvertisement struct {
	name     string
	addr     string
	services []string
	rssi     int
}

func (a *fakeAdvertisement) LocalName() string  { return a.name }
func (a *fakeAdvertisement) Addr() string       { return a.addr }
func (a *fakeAdvertisement) Services() []string { return a.services }
func (a *fakeAdvertisement) RSSI() int          { return a.rssi }
func (a *fakeAdvertisement) Connectable() bool  { return true }

type fakeCharacteristic struct {
	uuid  string
	data  []byte
	err   error
	reads int
}

func (c *fakeCharacteristic) UUID() string { return c.uuid }

func (c *fakeCharacteristic) Read() ([]byte, error) {
	c.reads++
	if c.err != nil {
		return nil, c.err
	}
	return c.data, nil
}

type fakePeripheral struct {
	addr       string
	name       string
	connected  bool
	connectErr error
	connects   int
	chars      []ble.Characteristic
}

func (p *fakePeripheral) Addr() string { return p.addr }
func (p *fakePeripheral) Name() string { return p.name }

func (p *fakePeripheral) Connect(ctx context.Context) error {
	if p.connected {
		return nil
	}
	p.connects++
	if p.connectErr != nil {
		return p.connectErr
	}
	p.connected = true
	return nil
}

func (p *fakePeripheral) Disconnect() error {
	p.connected = false
	return nil
}

func (p *fakePeripheral) IsConnected() bool { return p.connected }

func (p *fakePeripheral) Characteristics() []ble.Characteristic { return p.chars }

type fakeAdapter struct {
	advs       []ble.Advertisement
	peripheral *fakePeripheral
}

// Scan emits the canned advertisements, then idles until the scan context is
// cancelled, mirroring how a real scan only ends on cancellation.
func (a *fakeAdapter) Scan(ctx context.Context, allowDup bool, handler func(ble.Advertisement)) error {
	for _, adv := range a.advs {
		handler(adv)
	}
	<-ctx.Done()
	return nil
}

func (a *fakeAdapter) Peripheral(addr, name string) ble.Peripheral {
	if a.peripheral == nil {
		a.peripheral = &fakePeripheral{}
	}
	a.peripheral.addr = addr
	a.peripheral.name = name
	return a.peripheral
}

// testOptions shrinks the discovery timings so failing paths don't stall the
// test run for the full production timeout.
func testOptions() *Options {
	return &Options{
		SearchTimeout: 250 * time.Millisecond,
		PollInterval:  5 * time.Millisecond,
		NamePrefix:    "Aranet4",
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestDevice(p *fakePeripheral, readings ble.Characteristic) *Device {
	return &Device{peripheral: p, readings: readings, logger: quietLogger()}
}

// goldenPayload decodes to: CO2 1000 ppm, 352.0 degrees C, 80 hPa, humidity
// 50%, battery 100%, status GREEN, interval 60s, last update 5s ago.
var goldenPayload = []byte{0xE8, 0x03, 0x80, 0x1B, 0x20, 0x03, 0x32, 0x64, 0x01, 0x3C, 0x00, 0x05, 0x00}

func readingsCharacteristic(data []byte) *fakeCharacteristic {
	return &fakeCharacteristic{uuid: ble.NormalizeUUID(CurrentReadingsUUID), data: data}
}
