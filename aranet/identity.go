package aranet

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Identity holds the six standard Device Information Service values.
// Immutable once constructed.
type Identity struct {
	ManufacturerName string
	ModelNumber      string
	SerialNumber     string
	HardwareRevision string
	FirmwareRevision string
	SoftwareRevision string
}

// ReadIdentity reads the six standard Device Information characteristics and
// assembles an Identity. Every one of the six must be present; a partial
// record is never returned.
func (d *Device) ReadIdentity(ctx context.Context) (Identity, error) {
	if !d.peripheral.IsConnected() {
		if err := d.Reconnect(ctx); err != nil {
			return Identity{}, err
		}
	}

	var identity Identity
	resolved := make(map[string]bool, identityFields.Len())

	for _, char := range d.peripheral.Characteristics() {
		field, ok := identityFields.Get(char.UUID())
		if !ok || resolved[char.UUID()] {
			continue
		}

		data, err := char.Read()
		if err != nil {
			return Identity{}, &DeviceError{Kind: DeviceTransport, Err: err}
		}
		if !utf8.Valid(data) {
			return Identity{}, &DeviceError{
				Kind:      InvalidAttribute,
				Attribute: field.name,
				Err:       fmt.Errorf("value %x is not valid UTF-8", data),
			}
		}

		value := string(data)
		if field.stripNUL {
			value = strings.TrimRight(value, "\x00")
		}
		field.assign(&identity, value)
		resolved[char.UUID()] = true
	}

	for pair := identityFields.Oldest(); pair != nil; pair = pair.Next() {
		if !resolved[pair.Key] {
			return Identity{}, &DeviceError{Kind: MissingAttribute, Attribute: pair.Value.name}
		}
	}
	return identity, nil
}
