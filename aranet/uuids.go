package aranet

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

// GATT UUIDs specific to the Aranet4 product family.
const (
	// ServiceUUID is advertised by Aranet4 devices and is used to filter
	// the discovery scan.
	ServiceUUID = "0000fce0-0000-1000-8000-00805f9b34fb"

	// CurrentReadingsUUID is the vendor characteristic carrying the live
	// measurement payload.
	CurrentReadingsUUID = "f0cd3001-95da-4f4b-9ac8-aa55d312af0c"
)

// Bluetooth SIG Device Information Service characteristic UUIDs.
const (
	modelNumberUUID      = "2a24"
	serialNumberUUID     = "2a25"
	firmwareRevisionUUID = "2a26"
	hardwareRevisionUUID = "2a27"
	softwareRevisionUUID = "2a28"
	manufacturerNameUUID = "2a29"
)

// identityField describes how one Device Information characteristic maps onto
// an Identity field. stripNUL is set only for the two characteristics the
// device pads with trailing NUL bytes.
type identityField struct {
	name     string
	stripNUL bool
	assign   func(*Identity, string)
}

// identityFields maps normalized characteristic UUIDs to their target Identity
// fields. Insertion order determines which missing attribute is reported
// first, so adding a future standard field is a data change only.
var identityFields = func() *orderedmap.OrderedMap[string, identityField] {
	m := orderedmap.New[string, identityField]()
	m.Set(ble.NormalizeUUID(manufacturerNameUUID), identityField{
		name:     "manufacturer_name",
		stripNUL: true,
		assign:   func(i *Identity, v string) { i.ManufacturerName = v },
	})
	m.Set(ble.NormalizeUUID(modelNumberUUID), identityField{
		name:     "model_number",
		stripNUL: true,
		assign:   func(i *Identity, v string) { i.ModelNumber = v },
	})
	m.Set(ble.NormalizeUUID(serialNumberUUID), identityField{
		name:   "serial_number",
		assign: func(i *Identity, v string) { i.SerialNumber = v },
	})
	m.Set(ble.NormalizeUUID(hardwareRevisionUUID), identityField{
		name:   "hardware_revision",
		assign: func(i *Identity, v string) { i.HardwareRevision = v },
	})
	m.Set(ble.NormalizeUUID(firmwareRevisionUUID), identityField{
		name:   "firmware_revision",
		assign: func(i *Identity, v string) { i.FirmwareRevision = v },
	})
	m.Set(ble.NormalizeUUID(softwareRevisionUUID), identityField{
		name:   "software_revision",
		assign: func(i *Identity, v string) { i.SoftwareRevision = v },
	})
	return m
}()
