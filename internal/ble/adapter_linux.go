package ble

import (
	blelib "github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
)

// newNativeDevice opens the first available HCI device via BlueZ.
func newNativeDevice() (blelib.Device, error) {
	return linux.NewDevice()
}
