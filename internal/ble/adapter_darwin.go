package ble

import (
	blelib "github.com/go-ble/ble"
	"github.com/go-ble/ble/darwin"
)

// newNativeDevice opens the CoreBluetooth central manager.
func newNativeDevice() (blelib.Device, error) {
	return darwin.NewDevice()
}
