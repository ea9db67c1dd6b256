package ble

import (
	"context"
	"errors"

	blelib "github.com/go-ble/ble"
	"github.com/sirupsen/logrus"
)

// AdapterFactory creates the platform BLE adapter. It is a variable so tests
// can substitute a fake transport for the whole stack.
var AdapterFactory = func(logger *logrus.Logger) (Adapter, error) {
	if logger == nil {
		logger = logrus.New()
	}
	dev, err := newNativeDevice()
	if err != nil {
		return nil, err
	}
	return &bleAdapter{dev: dev, logger: logger}, nil
}

// bleAdapter wraps a blelib.Device to implement the Adapter interface.
type bleAdapter struct {
	dev    blelib.Device
	logger *logrus.Logger
}

func (a *bleAdapter) Scan(ctx context.Context, allowDup bool, handler func(Advertisement)) error {
	err := a.dev.Scan(ctx, allowDup, func(adv blelib.Advertisement) {
		handler(newAdvertisement(adv))
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func (a *bleAdapter) Peripheral(addr, name string) Peripheral {
	return newPeripheral(a.dev, addr, name, a.logger)
}

// bleAdvertisement wraps blelib.Advertisement to implement Advertisement.
type bleAdvertisement struct {
	adv blelib.Advertisement
}

func newAdvertisement(adv blelib.Advertisement) Advertisement {
	return &bleAdvertisement{adv: adv}
}

func (a *bleAdvertisement) LocalName() string { return a.adv.LocalName() }
func (a *bleAdvertisement) Addr() string      { return a.adv.Addr().String() }
func (a *bleAdvertisement) RSSI() int         { return a.adv.RSSI() }
func (a *bleAdvertisement) Connectable() bool { return a.adv.Connectable() }

func (a *bleAdvertisement) Services() []string {
	services := a.adv.Services()
	result := make([]string, len(services))
	for i, svc := range services {
		result[i] = NormalizeUUID(svc.String())
	}
	return result
}
