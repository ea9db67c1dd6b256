// Package aranet is a client for the Aranet4 Bluetooth Low Energy CO2 sensor.
//
// Connect discovers an advertising device, connects to it and resolves the
// vendor characteristic carrying the live measurement payload:
//
//	device, err := aranet.Connect(ctx, nil)
//	if err != nil {
//		// handle *aranet.ConnectionError
//	}
//	defer device.Disconnect()
//
//	m, err := device.ReadMeasurement(ctx)
//
// A Device is not safe for concurrent use; callers must serialize operations
// on a single handle.
package aranet
