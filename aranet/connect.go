package aranet

import (
	"context"
	"strings"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/sirupsen/logrus"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

// Connect finds an advertising Aranet4 device, connects to it and resolves
// the current-readings characteristic.
//
// Discovery races a polling loop over the peripherals seen so far against the
// search timeout; whichever finishes first wins and the loser is abandoned.
// When several matching devices advertise at once, the first one observed is
// used.
func Connect(ctx context.Context, opts *Options) (*Device, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	adapter, err := ble.AdapterFactory(logger)
	if err != nil {
		return nil, &ConnectionError{Kind: AdapterUnavailable, Err: err}
	}

	match, err := findDevice(ctx, adapter, opts, logger)
	if err != nil {
		return nil, err
	}

	peripheral := adapter.Peripheral(match.Addr(), match.LocalName())
	if err := peripheral.Connect(ctx); err != nil {
		return nil, &ConnectionError{Kind: ConnectionTransport, Err: err}
	}

	readings, ok := findCharacteristic(peripheral, CurrentReadingsUUID)
	if !ok {
		return nil, &ConnectionError{Kind: CharacteristicNotFound, UUID: CurrentReadingsUUID}
	}

	return &Device{peripheral: peripheral, readings: readings, logger: logger}, nil
}

// findDevice runs the discovery race: a scan feeding the seen-peripheral set,
// a polling loop inspecting that set, and the search timer. The scan callback
// fires concurrently with the polling loop, hence the concurrent map.
func findDevice(ctx context.Context, adapter ble.Adapter, opts *Options, logger *logrus.Logger) (ble.Advertisement, error) {
	seen := hashmap.New[string, ble.Advertisement]()
	product := ble.NormalizeUUID(ServiceUUID)

	scanCtx, stopScan := context.WithCancel(ctx)
	defer stopScan()

	// The scan is filtered to the product service, but the filter is
	// advisory: matching is still done by name in the polling loop. An
	// address that once advertised the service stays eligible, so a scan
	// response that carries the name without repeating the service list
	// still completes the match.
	scanErr := make(chan error, 1)
	go func() {
		scanErr <- adapter.Scan(scanCtx, true, func(adv ble.Advertisement) {
			_, seenBefore := seen.Get(adv.Addr())
			if !seenBefore {
				if !advertisesService(adv, product) {
					return
				}
				logger.WithFields(logrus.Fields{
					"name":    adv.LocalName(),
					"address": adv.Addr(),
					"rssi":    adv.RSSI(),
				}).Debug("Discovered peripheral")
			}
			seen.Set(adv.Addr(), adv)
		})
	}()

	found := make(chan ble.Advertisement, 1)
	go func() {
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		for {
			if adv := matchPeripheral(seen, opts.NamePrefix); adv != nil {
				found <- adv
				return
			}
			select {
			case <-scanCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	timer := time.NewTimer(opts.SearchTimeout)
	defer timer.Stop()

	for {
		select {
		case match := <-found:
			logger.WithFields(logrus.Fields{
				"name":    match.LocalName(),
				"address": match.Addr(),
			}).Info("Found Aranet4 device")
			return match, nil
		case <-timer.C:
			return nil, &ConnectionError{Kind: SearchTimeout}
		case err := <-scanErr:
			if err != nil {
				return nil, &ConnectionError{Kind: ConnectionTransport, Err: err}
			}
			// The scan ended cleanly; keep polling what was seen.
			scanErr = nil
		case <-ctx.Done():
			return nil, &ConnectionError{Kind: ConnectionTransport, Err: ctx.Err()}
		}
	}
}

// matchPeripheral returns the first seen advertisement whose local name
// carries the prefix. Peripherals with no advertised name are skipped, even
// when they advertise the product service.
func matchPeripheral(seen *hashmap.Map[string, ble.Advertisement], prefix string) ble.Advertisement {
	var match ble.Advertisement
	seen.Range(func(_ string, adv ble.Advertisement) bool {
		name := adv.LocalName()
		if name == "" || !strings.HasPrefix(name, prefix) {
			return true
		}
		match = adv
		return false
	})
	return match
}

// advertisesService reports whether the advertisement carries the given
// normalized service UUID in its service list.
func advertisesService(adv ble.Advertisement, uuid string) bool {
	for _, svc := range adv.Services() {
		if svc == uuid {
			return true
		}
	}
	return false
}

// findCharacteristic locates a characteristic by UUID among everything the
// peripheral exposes.
func findCharacteristic(peripheral ble.Peripheral, uuid string) (ble.Characteristic, bool) {
	want := ble.NormalizeUUID(uuid)
	for _, char := range peripheral.Characteristics() {
		if char.UUID() == want {
			return char, true
		}
	}
	return nil, false
}
