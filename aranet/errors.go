package aranet

import "fmt"

// ConnectionErrorKind classifies failures of a discovery/connect attempt.
type ConnectionErrorKind string

const (
	// AdapterUnavailable means no Bluetooth adapter could be acquired.
	AdapterUnavailable ConnectionErrorKind = "adapter_unavailable"
	// SearchTimeout means no matching device advertised before the deadline.
	SearchTimeout ConnectionErrorKind = "search_timeout"
	// CharacteristicNotFound means the connected device does not expose the
	// expected vendor characteristic.
	CharacteristicNotFound ConnectionErrorKind = "characteristic_not_found"
	// ConnectionTransport wraps an underlying BLE transport failure.
	ConnectionTransport ConnectionErrorKind = "transport"
)

// ConnectionError is returned by Connect. Any of these is fatal to the
// attempt; the caller must restart discovery from scratch.
type ConnectionError struct {
	Kind ConnectionErrorKind
	UUID string // set for CharacteristicNotFound
	Err  error  // underlying cause, if any
}

func (e *ConnectionError) Error() string {
	switch e.Kind {
	case AdapterUnavailable:
		return "failed to find a Bluetooth adapter"
	case SearchTimeout:
		return "failed to find an Aranet4 device before timeout"
	case CharacteristicNotFound:
		return fmt.Sprintf("the characteristic %s was not found", e.UUID)
	case ConnectionTransport:
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return string(e.Kind)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is allows errors.Is to compare ConnectionError values by Kind.
func (e *ConnectionError) Is(target error) bool {
	t, ok := target.(*ConnectionError)
	return ok && e.Kind == t.Kind
}

// Sentinels for errors.Is checks against ConnectionError kinds.
var (
	ErrAdapterUnavailable     = &ConnectionError{Kind: AdapterUnavailable}
	ErrSearchTimeout          = &ConnectionError{Kind: SearchTimeout}
	ErrCharacteristicNotFound = &ConnectionError{Kind: CharacteristicNotFound}
)

// DeviceErrorKind classifies failures of an operation on a connected Device.
type DeviceErrorKind string

const (
	// MissingAttribute means a standard identity characteristic was never
	// observed among the device's characteristics.
	MissingAttribute DeviceErrorKind = "missing_attribute"
	// InvalidAttribute means an identity characteristic held a value that
	// could not be decoded.
	InvalidAttribute DeviceErrorKind = "invalid_attribute"
	// MalformedPayload means the measurement payload could not be decoded.
	MalformedPayload DeviceErrorKind = "io"
	// DeviceTransport wraps an underlying BLE transport failure.
	DeviceTransport DeviceErrorKind = "transport"
)

// DeviceError is returned by operations on a Device. It is fatal to the
// individual operation, but the handle stays usable for a subsequent call.
type DeviceError struct {
	Kind      DeviceErrorKind
	Attribute string // set for MissingAttribute and InvalidAttribute
	Err       error  // underlying cause, if any
}

func (e *DeviceError) Error() string {
	switch e.Kind {
	case MissingAttribute:
		return fmt.Sprintf("device information attribute %q was not found", e.Attribute)
	case InvalidAttribute:
		return fmt.Sprintf("device information attribute %q is invalid: %v", e.Attribute, e.Err)
	case MalformedPayload, DeviceTransport:
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return string(e.Kind)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Is allows errors.Is to compare DeviceError values by Kind.
func (e *DeviceError) Is(target error) bool {
	t, ok := target.(*DeviceError)
	return ok && e.Kind == t.Kind
}

// Sentinels for errors.Is checks against DeviceError kinds.
var (
	ErrMissingAttribute = &DeviceError{Kind: MissingAttribute}
	ErrInvalidAttribute = &DeviceError{Kind: InvalidAttribute}
	ErrMalformedPayload = &DeviceError{Kind: MalformedPayload}
)
