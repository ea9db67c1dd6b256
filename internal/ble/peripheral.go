package ble

import (
	"context"
	"fmt"
	"sync"
	"time"

	blelib "github.com/go-ble/ble"
	"github.com/sirupsen/logrus"
)

// DefaultConnectTimeout bounds a dial when the caller's context carries no
// deadline of its own.
const DefaultConnectTimeout = 30 * time.Second

// blePeripheral implements Peripheral on top of blelib.Device/blelib.Client.
//
// Characteristic wrappers are created on the first connect and kept for the
// lifetime of the peripheral; a reconnect only refreshes the live attribute
// handles inside them, so references held by callers stay valid.
type blePeripheral struct {
	addr   string
	name   string
	dev    blelib.Device
	logger *logrus.Logger

	mu     sync.Mutex
	client blelib.Client
	chars  []*bleCharacteristic
	byUUID map[string]*bleCharacteristic
}

func newPeripheral(dev blelib.Device, addr, name string, logger *logrus.Logger) *blePeripheral {
	return &blePeripheral{
		addr:   addr,
		name:   name,
		dev:    dev,
		logger: logger,
		byUUID: make(map[string]*bleCharacteristic),
	}
}

func (p *blePeripheral) Addr() string { return p.addr }
func (p *blePeripheral) Name() string { return p.name }

// Connect dials the peripheral and discovers its GATT profile. Calling
// Connect on an already-connected peripheral is a no-op.
func (p *blePeripheral) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.connectedLocked() {
		return nil
	}

	// A dropped link can leave a half-dead client behind; release it before
	// dialing again.
	if p.client != nil {
		p.client.CancelConnection()
		p.client = nil
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultConnectTimeout)
		defer cancel()
	}

	p.logger.WithField("address", p.addr).Info("Connecting to BLE device...")

	client, err := p.dev.Dial(ctx, blelib.NewAddr(p.addr))
	if err != nil {
		return fmt.Errorf("failed to connect to device %q: %w", p.addr, err)
	}

	profile, err := client.DiscoverProfile(true)
	if err != nil {
		client.CancelConnection()
		return fmt.Errorf("failed to discover profile: %w", err)
	}

	p.refreshCharacteristics(profile)

	p.client = client
	p.logger.WithFields(logrus.Fields{
		"address":         p.addr,
		"characteristics": len(p.chars),
	}).Info("BLE device connected")
	return nil
}

// refreshCharacteristics updates the stable wrappers from a freshly discovered
// profile. Existing wrappers get their live attribute handle replaced in
// place, new characteristics get new wrappers, and wrappers for
// characteristics the device no longer exposes lose their handle so a read
// through them fails instead of addressing the wrong attribute.
func (p *blePeripheral) refreshCharacteristics(profile *blelib.Profile) {
	discovered := make(map[string]bool, len(p.byUUID))
	for _, svc := range profile.Services {
		for _, char := range svc.Characteristics {
			uuid := NormalizeUUID(char.UUID.String())
			discovered[uuid] = true
			if existing, ok := p.byUUID[uuid]; ok {
				existing.char = char
				continue
			}
			wrapper := &bleCharacteristic{uuid: uuid, char: char, peripheral: p}
			p.byUUID[uuid] = wrapper
			p.chars = append(p.chars, wrapper)
		}
	}
	for uuid, wrapper := range p.byUUID {
		if !discovered[uuid] {
			wrapper.char = nil
		}
	}
}

// Disconnect tears down the transport connection. Characteristic wrappers are
// kept so the peripheral can be reconnected later.
func (p *blePeripheral) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.CancelConnection()
	p.client = nil
	if err != nil {
		return fmt.Errorf("failed to disconnect from device %q: %w", p.addr, err)
	}
	return nil
}

// IsConnected asks the transport whether the link is still up.
func (p *blePeripheral) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectedLocked()
}

func (p *blePeripheral) connectedLocked() bool {
	if p.client == nil {
		return false
	}
	select {
	case <-p.client.Disconnected():
		return false
	default:
		return true
	}
}

// Characteristics returns all characteristics discovered on the peripheral.
func (p *blePeripheral) Characteristics() []Characteristic {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]Characteristic, len(p.chars))
	for i, char := range p.chars {
		result[i] = char
	}
	return result
}

// bleCharacteristic implements Characteristic for a discovered attribute.
type bleCharacteristic struct {
	uuid       string
	char       *blelib.Characteristic
	peripheral *blePeripheral
}

func (c *bleCharacteristic) UUID() string { return c.uuid }

func (c *bleCharacteristic) Read() ([]byte, error) {
	c.peripheral.mu.Lock()
	client := c.peripheral.client
	char := c.char
	c.peripheral.mu.Unlock()

	if char == nil {
		return nil, fmt.Errorf("characteristic %s is no longer exposed by the device", c.uuid)
	}
	if client == nil {
		return nil, fmt.Errorf("read characteristic %s: %w", c.uuid, ErrNotConnected)
	}

	data, err := client.ReadCharacteristic(char)
	if err != nil {
		return nil, fmt.Errorf("failed to read characteristic %s: %w", c.uuid, err)
	}
	return data, nil
}
